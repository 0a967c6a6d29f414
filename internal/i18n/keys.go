package i18n

// Key 界面文案键（与前端文案表一一对应）
type Key string

const (
	// ── 页头 ──
	KeyApplicationJourney Key = "applicationJourney"
	KeyTrackProgress      Key = "trackProgress"
	KeyTotalPoints        Key = "totalPoints"
	KeyOverallProgress    Key = "overallProgress"
	KeyStepsCompleted     Key = "stepsCompleted"

	// ── 学生类型 ──
	KeyStudentType          Key = "studentType"
	KeyDomesticStudent      Key = "domesticStudent"
	KeyInternationalStudent Key = "internationalStudent"

	// ── 成就 ──
	KeyAchievements           Key = "achievements"
	KeyGettingStarted         Key = "gettingStarted"
	KeyGettingStartedDesc     Key = "gettingStartedDesc"
	KeyHalfwayHero            Key = "halfwayHero"
	KeyHalfwayHeroDesc        Key = "halfwayHeroDesc"
	KeyPointCollector         Key = "pointCollector"
	KeyPointCollectorDesc     Key = "pointCollectorDesc"
	KeyCompletionChampion     Key = "completionChampion"
	KeyCompletionChampionDesc Key = "completionChampionDesc"

	// ── 申请步骤 ──
	KeyApplicationSteps Key = "applicationSteps"
	KeyProgress         Key = "progress"
	KeyRequiredSteps    Key = "requiredSteps"
	KeyOptional         Key = "optional"
	KeyRequirements     Key = "requirements"
	KeyMarkComplete     Key = "markComplete"
	KeyCompleted        Key = "completed"

	// ── 步骤标题与描述 ──
	KeySubmitApplication      Key = "submitApplication"
	KeySubmitApplicationDesc  Key = "submitApplicationDesc"
	KeyCompleteFAFSA          Key = "completeFafsa"
	KeyCompleteFAFSADesc      Key = "completeFafsaDesc"
	KeyHousingApplication     Key = "housingApplication"
	KeyHousingApplicationDesc Key = "housingApplicationDesc"
	KeyI20FormRequest         Key = "i20FormRequest"
	KeyI20FormRequestDesc     Key = "i20FormRequestDesc"

	// ── 申请材料要求 ──
	KeyPersonalInfo    Key = "personalInfo"
	KeyAcademicHistory Key = "academicHistory"
	KeyEssayStatement  Key = "essayStatement"
	KeyApplicationFee  Key = "applicationFee"

	// ── FAFSA 材料要求 ──
	KeySocialSecurity Key = "socialSecurity"
	KeyTaxReturns     Key = "taxReturns"
	KeyBankStatements Key = "bankStatements"
	KeyFsaID          Key = "fsaId"

	// ── 住宿材料要求 ──
	KeyHousingForm       Key = "housingForm"
	KeyHousingDeposit    Key = "housingDeposit"
	KeyRoommatePrefs     Key = "roommatePrefs"
	KeyMealPlanSelection Key = "mealPlanSelection"

	// ── I-20 材料要求 ──
	KeyFinancialProof         Key = "financialProof"
	KeyBankStatementsSponsors Key = "bankStatementsSponsors"
	KeyPassportCopy           Key = "passportCopy"
	KeySevisFee               Key = "sevisFee"

	// ── 操作按钮 ──
	KeyStartApplication     Key = "startApplication"
	KeyCompleteFAFSABtn     Key = "completeFafsaBtn"
	KeySelectHousingOptions Key = "selectHousingOptions"
	KeyRequestI20Form       Key = "requestI20Form"

	// ── 完成提示 ──
	KeyCongratulations   Key = "congratulations"
	KeyCompletedAllSteps Key = "completedAllSteps"
	KeyWelcomeDeacon     Key = "welcomeDeacon"

	// ── 页脚 ──
	KeyQuestionsContact Key = "questionsContact"
	KeyVisitUs          Key = "visitUs"

	// ── 住宿表单 ──
	KeyHousingPreference               Key = "housingPreference"
	KeySingleDorm                      Key = "singleDorm"
	KeySingleDormDesc                  Key = "singleDormDesc"
	KeyDoubleDorm                      Key = "doubleDorm"
	KeyDoubleDormDesc                  Key = "doubleDormDesc"
	KeySuiteStyle                      Key = "suiteStyle"
	KeySuiteStyleDesc                  Key = "suiteStyleDesc"
	KeyOffCampus                       Key = "offCampus"
	KeyOffCampusDesc                   Key = "offCampusDesc"
	KeyMealPlanSelectionTitle          Key = "mealPlanSelectionTitle"
	KeyUnlimitedMeal                   Key = "unlimitedMeal"
	KeyUnlimitedMealDesc               Key = "unlimitedMealDesc"
	KeyMeals19                         Key = "meals19"
	KeyMeals19Desc                     Key = "meals19Desc"
	KeyMeals14                         Key = "meals14"
	KeyMeals14Desc                     Key = "meals14Desc"
	KeyMeals10                         Key = "meals10"
	KeyMeals10Desc                     Key = "meals10Desc"
	KeyCommuterPlan                    Key = "commuterPlan"
	KeyCommuterPlanDesc                Key = "commuterPlanDesc"
	KeyNoMealPlan                      Key = "noMealPlan"
	KeyNoMealPlanDesc                  Key = "noMealPlanDesc"
	KeyLaundryFacilities               Key = "laundryFacilities"
	KeyLaundryInfo                     Key = "laundryInfo"
	KeyLaundryAcknowledge              Key = "laundryAcknowledge"
	KeyFoodAllergies                   Key = "foodAllergies"
	KeyFoodAllergiesPlaceholder        Key = "foodAllergiesPlaceholder"
	KeySpecialCircumstances            Key = "specialCircumstances"
	KeySpecialCircumstancesPlaceholder Key = "specialCircumstancesPlaceholder"
	KeySubmitHousingPrefs              Key = "submitHousingPrefs"
	KeyHousingCompleted                Key = "housingCompleted"
	KeyEditPreferences                 Key = "editPreferences"
	KeyCancel                          Key = "cancel"
)

// allKeys 全部已知文案键（按分组顺序）
var allKeys = []Key{
	KeyApplicationJourney,
	KeyTrackProgress,
	KeyTotalPoints,
	KeyOverallProgress,
	KeyStepsCompleted,
	KeyStudentType,
	KeyDomesticStudent,
	KeyInternationalStudent,
	KeyAchievements,
	KeyGettingStarted,
	KeyGettingStartedDesc,
	KeyHalfwayHero,
	KeyHalfwayHeroDesc,
	KeyPointCollector,
	KeyPointCollectorDesc,
	KeyCompletionChampion,
	KeyCompletionChampionDesc,
	KeyApplicationSteps,
	KeyProgress,
	KeyRequiredSteps,
	KeyOptional,
	KeyRequirements,
	KeyMarkComplete,
	KeyCompleted,
	KeySubmitApplication,
	KeySubmitApplicationDesc,
	KeyCompleteFAFSA,
	KeyCompleteFAFSADesc,
	KeyHousingApplication,
	KeyHousingApplicationDesc,
	KeyI20FormRequest,
	KeyI20FormRequestDesc,
	KeyPersonalInfo,
	KeyAcademicHistory,
	KeyEssayStatement,
	KeyApplicationFee,
	KeySocialSecurity,
	KeyTaxReturns,
	KeyBankStatements,
	KeyFsaID,
	KeyHousingForm,
	KeyHousingDeposit,
	KeyRoommatePrefs,
	KeyMealPlanSelection,
	KeyFinancialProof,
	KeyBankStatementsSponsors,
	KeyPassportCopy,
	KeySevisFee,
	KeyStartApplication,
	KeyCompleteFAFSABtn,
	KeySelectHousingOptions,
	KeyRequestI20Form,
	KeyCongratulations,
	KeyCompletedAllSteps,
	KeyWelcomeDeacon,
	KeyQuestionsContact,
	KeyVisitUs,
	KeyHousingPreference,
	KeySingleDorm,
	KeySingleDormDesc,
	KeyDoubleDorm,
	KeyDoubleDormDesc,
	KeySuiteStyle,
	KeySuiteStyleDesc,
	KeyOffCampus,
	KeyOffCampusDesc,
	KeyMealPlanSelectionTitle,
	KeyUnlimitedMeal,
	KeyUnlimitedMealDesc,
	KeyMeals19,
	KeyMeals19Desc,
	KeyMeals14,
	KeyMeals14Desc,
	KeyMeals10,
	KeyMeals10Desc,
	KeyCommuterPlan,
	KeyCommuterPlanDesc,
	KeyNoMealPlan,
	KeyNoMealPlanDesc,
	KeyLaundryFacilities,
	KeyLaundryInfo,
	KeyLaundryAcknowledge,
	KeyFoodAllergies,
	KeyFoodAllergiesPlaceholder,
	KeySpecialCircumstances,
	KeySpecialCircumstancesPlaceholder,
	KeySubmitHousingPrefs,
	KeyHousingCompleted,
	KeyEditPreferences,
	KeyCancel,
}

