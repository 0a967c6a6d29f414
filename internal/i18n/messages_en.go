package i18n

// 英文文案表（基准语言）
var enMessages = map[Key]string{
	// 页头
	KeyApplicationJourney: "Application Journey",
	KeyTrackProgress:      "Track your progress to New Hope!",
	KeyTotalPoints:        "Total Points",
	KeyOverallProgress:    "Overall Progress",
	KeyStepsCompleted:     "steps completed",

	// 学生类型
	KeyStudentType:          "Student Type",
	KeyDomesticStudent:      "Domestic Student",
	KeyInternationalStudent: "International Student",

	// 成就
	KeyAchievements:           "Achievements",
	KeyGettingStarted:         "Getting Started",
	KeyGettingStartedDesc:     "Complete your first application step",
	KeyHalfwayHero:            "Halfway Hero",
	KeyHalfwayHeroDesc:        "Complete 50% of your application",
	KeyPointCollector:         "Point Collector",
	KeyPointCollectorDesc:     "Earn 200+ points",
	KeyCompletionChampion:     "Completion Champion",
	KeyCompletionChampionDesc: "Complete all required steps",

	// 申请步骤
	KeyApplicationSteps: "Application Steps",
	KeyProgress:         "Progress",
	KeyRequiredSteps:    "Required Steps",
	KeyOptional:         "Optional",
	KeyRequirements:     "Requirements:",
	KeyMarkComplete:     "Mark as Complete",
	KeyCompleted:        "Completed! ✓",

	// 步骤标题与描述
	KeySubmitApplication:      "Submit Application",
	KeySubmitApplicationDesc:  "Complete and submit your New Hope Christian College application online.",
	KeyCompleteFAFSA:          "Complete FAFSA",
	KeyCompleteFAFSADesc:      "File your Free Application for Federal Student Aid to determine financial aid eligibility.",
	KeyHousingApplication:     "Housing Application",
	KeyHousingApplicationDesc: "Apply for on-campus housing and select your preferred residence hall.",
	KeyI20FormRequest:         "I-20 Form Request",
	KeyI20FormRequestDesc:     "Request your I-20 form for F-1 student visa application.",

	// 申请材料要求
	KeyPersonalInfo:    "Personal information and contact details",
	KeyAcademicHistory: "Academic history and transcripts",
	KeyEssayStatement:  "Essay or personal statement",
	KeyApplicationFee:  "Application fee payment",

	// FAFSA 材料要求
	KeySocialSecurity: "Social Security Number",
	KeyTaxReturns:     "Tax returns and financial records",
	KeyBankStatements: "Bank statements and investment records",
	KeyFsaID:          "Federal Student Aid ID (FSA ID)",

	// 住宿材料要求
	KeyHousingForm:       "Housing application form",
	KeyHousingDeposit:    "Housing deposit",
	KeyRoommatePrefs:     "Roommate preferences",
	KeyMealPlanSelection: "Meal plan selection",

	// I-20 材料要求
	KeyFinancialProof:         "Proof of financial support",
	KeyBankStatementsSponsors: "Bank statements or sponsor letter",
	KeyPassportCopy:           "Passport copy",
	KeySevisFee:               "SEVIS fee payment",

	// 操作按钮
	KeyStartApplication:     "Start Application",
	KeyCompleteFAFSABtn:     "Complete FAFSA",
	KeySelectHousingOptions: "Select Housing Options",
	KeyRequestI20Form:       "Request I-20 Form",

	// 完成提示
	KeyCongratulations:   "Congratulations!",
	KeyCompletedAllSteps: "You've completed all required application steps for New Hope Christian College!",
	KeyWelcomeDeacon:     "Welcome to the Deacon family! We're excited to have you join our community.",

	// 页脚
	KeyQuestionsContact: "Questions? Contact our Admissions Office at",
	KeyVisitUs:          "Visit us at",

	// 住宿表单
	KeyHousingPreference:               "Housing Preference",
	KeySingleDorm:                      "Single Dorm Room",
	KeySingleDormDesc:                  "Private room in residence hall",
	KeyDoubleDorm:                      "Double Dorm Room",
	KeyDoubleDormDesc:                  "Shared room with one roommate",
	KeySuiteStyle:                      "Suite Style",
	KeySuiteStyleDesc:                  "Private room with shared common area",
	KeyOffCampus:                       "Off-Campus Housing",
	KeyOffCampusDesc:                   "Living independently off campus",
	KeyMealPlanSelectionTitle:          "Meal Plan Selection",
	KeyUnlimitedMeal:                   "Unlimited Meal Plan",
	KeyUnlimitedMealDesc:               "Unlimited dining hall access + $200 flex dollars",
	KeyMeals19:                         "19 Meals/Week",
	KeyMeals19Desc:                     "19 meals per week + $150 flex dollars",
	KeyMeals14:                         "14 Meals/Week",
	KeyMeals14Desc:                     "14 meals per week + $100 flex dollars",
	KeyMeals10:                         "10 Meals/Week",
	KeyMeals10Desc:                     "10 meals per week + $75 flex dollars",
	KeyCommuterPlan:                    "Commuter Plan",
	KeyCommuterPlanDesc:                "50 meals per semester + $50 flex dollars",
	KeyNoMealPlan:                      "No Meal Plan",
	KeyNoMealPlanDesc:                  "Not participating in meal plan",
	KeyLaundryFacilities:               "Laundry Facilities",
	KeyLaundryInfo:                     "All residence halls are equipped with coin-operated laundry facilities. Washers and dryers are available on each floor. Current rates are $2.00 per wash cycle and $2.00 per dry cycle. Quarters are required - change machines are available in the lobby of each residence hall.",
	KeyLaundryAcknowledge:              "I acknowledge the laundry facility information and understand the costs involved.",
	KeyFoodAllergies:                   "Food Allergies & Dietary Restrictions",
	KeyFoodAllergiesPlaceholder:        "Please list any food allergies, dietary restrictions, or special dietary needs. Our dining services team will work with you to ensure safe meal options.",
	KeySpecialCircumstances:            "Special Circumstances or Accommodations",
	KeySpecialCircumstancesPlaceholder: "Please describe any special circumstances, medical needs, accessibility requirements, or other accommodations you may need. This information helps us provide the best possible living experience.",
	KeySubmitHousingPrefs:              "Submit Housing Preferences",
	KeyHousingCompleted:                "Housing Application Completed",
	KeyEditPreferences:                 "Edit Preferences",
	KeyCancel:                          "Cancel",
}
