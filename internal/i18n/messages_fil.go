package i18n

// 菲律宾语文案表
var filMessages = map[Key]string{
	// 页头
	KeyApplicationJourney: "Paglalakbay sa Aplikasyon",
	KeyTrackProgress:      "Subaybayan ang inyong progreso sa New Hope!",
	KeyTotalPoints:        "Kabuuang Puntos",
	KeyOverallProgress:    "Kabuuang Progreso",
	KeyStepsCompleted:     "mga hakbang na natapos",

	// 学生类型
	KeyStudentType:          "Uri ng Estudyante",
	KeyDomesticStudent:      "Lokal na Estudyante",
	KeyInternationalStudent: "Internasyonal na Estudyante",

	// 成就
	KeyAchievements:           "Mga Tagumpay",
	KeyGettingStarted:         "Pagsisimula",
	KeyGettingStartedDesc:     "Tapusin ang inyong unang hakbang sa aplikasyon",
	KeyHalfwayHero:            "Bayani ng Kalahati",
	KeyHalfwayHeroDesc:        "Tapusin ang 50% ng inyong aplikasyon",
	KeyPointCollector:         "Tagakolekta ng Puntos",
	KeyPointCollectorDesc:     "Makakuha ng 200+ puntos",
	KeyCompletionChampion:     "Kampeon ng Pagkakatapos",
	KeyCompletionChampionDesc: "Tapusin ang lahat ng kinakailangang hakbang",

	// 申请步骤
	KeyApplicationSteps: "Mga Hakbang sa Aplikasyon",
	KeyProgress:         "Progreso",
	KeyRequiredSteps:    "Kinakailangang Hakbang",
	KeyOptional:         "Opsyonal",
	KeyRequirements:     "Mga Kinakailangan:",
	KeyMarkComplete:     "Markahan bilang Tapos",
	KeyCompleted:        "Tapos na! ✓",

	// 步骤标题与描述
	KeySubmitApplication:      "Ipasa ang Aplikasyon",
	KeySubmitApplicationDesc:  "Kumpletuhin at ipasa ang inyong aplikasyon sa New Hope Christian College online.",
	KeyCompleteFAFSA:          "Kumpletuhin ang FAFSA",
	KeyCompleteFAFSADesc:      "Mag-file ng inyong Free Application for Federal Student Aid upang matukoy ang eligibility para sa financial aid.",
	KeyHousingApplication:     "Aplikasyon para sa Tirahan",
	KeyHousingApplicationDesc: "Mag-apply para sa on-campus housing at piliin ang inyong preferred residence hall.",
	KeyI20FormRequest:         "Kahilingan ng I-20 Form",
	KeyI20FormRequestDesc:     "Humingi ng inyong I-20 form para sa F-1 student visa application.",

	// 申请材料要求
	KeyPersonalInfo:    "Personal na impormasyon at mga detalye ng kontak",
	KeyAcademicHistory: "Academic history at mga transcript",
	KeyEssayStatement:  "Essay o personal statement",
	KeyApplicationFee:  "Bayad sa application fee",

	// FAFSA 材料要求
	KeySocialSecurity: "Social Security Number",
	KeyTaxReturns:     "Mga tax return at financial record",
	KeyBankStatements: "Mga bank statement at investment record",
	KeyFsaID:          "Federal Student Aid ID (FSA ID)",

	// 住宿材料要求
	KeyHousingForm:       "Housing application form",
	KeyHousingDeposit:    "Housing deposit",
	KeyRoommatePrefs:     "Mga preference sa roommate",
	KeyMealPlanSelection: "Pagpili ng meal plan",

	// I-20 材料要求
	KeyFinancialProof:         "Patunay ng financial support",
	KeyBankStatementsSponsors: "Mga bank statement o sponsor letter",
	KeyPassportCopy:           "Kopya ng passport",
	KeySevisFee:               "Bayad sa SEVIS fee",

	// 操作按钮
	KeyStartApplication:     "Simulan ang Aplikasyon",
	KeyCompleteFAFSABtn:     "Kumpletuhin ang FAFSA",
	KeySelectHousingOptions: "Piliin ang mga Housing Option",
	KeyRequestI20Form:       "Humingi ng I-20 Form",

	// 完成提示
	KeyCongratulations:   "Binabati kita!",
	KeyCompletedAllSteps: "Natapos mo na ang lahat ng kinakailangang hakbang sa aplikasyon para sa New Hope Christian College!",
	KeyWelcomeDeacon:     "Maligayang pagdating sa Deacon family! Excited kami na sumali ka sa aming komunidad.",

	// 页脚
	KeyQuestionsContact: "May mga tanong? Makipag-ugnayan sa aming Admissions Office sa",
	KeyVisitUs:          "Bisitahin kami sa",

	// 住宿表单
	KeyHousingPreference:               "Preference sa Tirahan",
	KeySingleDorm:                      "Single Dorm Room",
	KeySingleDormDesc:                  "Private na kwarto sa residence hall",
	KeyDoubleDorm:                      "Double Dorm Room",
	KeyDoubleDormDesc:                  "Shared na kwarto na may isang roommate",
	KeySuiteStyle:                      "Suite Style",
	KeySuiteStyleDesc:                  "Private na kwarto na may shared common area",
	KeyOffCampus:                       "Off-Campus Housing",
	KeyOffCampusDesc:                   "Nakatira nang independent sa labas ng campus",
	KeyMealPlanSelectionTitle:          "Pagpili ng Meal Plan",
	KeyUnlimitedMeal:                   "Unlimited Meal Plan",
	KeyUnlimitedMealDesc:               "Unlimited dining hall access + $200 flex dollars",
	KeyMeals19:                         "19 Meals/Week",
	KeyMeals19Desc:                     "19 meals bawat linggo + $150 flex dollars",
	KeyMeals14:                         "14 Meals/Week",
	KeyMeals14Desc:                     "14 meals bawat linggo + $100 flex dollars",
	KeyMeals10:                         "10 Meals/Week",
	KeyMeals10Desc:                     "10 meals bawat linggo + $75 flex dollars",
	KeyCommuterPlan:                    "Commuter Plan",
	KeyCommuterPlanDesc:                "50 meals bawat semester + $50 flex dollars",
	KeyNoMealPlan:                      "Walang Meal Plan",
	KeyNoMealPlanDesc:                  "Hindi kasali sa meal plan",
	KeyLaundryFacilities:               "Mga Pasilidad ng Labahan",
	KeyLaundryInfo:                     "Ang lahat ng residence hall ay may coin-operated laundry facilities. May mga washing machine at dryer sa bawat palapag. Ang kasalukuyang presyo ay $2.00 bawat wash cycle at $2.00 bawat dry cycle. Kailangan ng mga quarter - may mga change machine sa lobby ng bawat residence hall.",
	KeyLaundryAcknowledge:              "Kinikilala ko ang impormasyon tungkol sa laundry facility at nauunawaan ko ang mga gastos na kasama.",
	KeyFoodAllergies:                   "Mga Food Allergy at Dietary Restriction",
	KeyFoodAllergiesPlaceholder:        "Pakikilala ang mga food allergy, dietary restriction, o special dietary need. Ang aming dining services team ay makikipagtulungan sa inyo upang masiguro ang mga safe meal option.",
	KeySpecialCircumstances:            "Mga Special Circumstance o Accommodation",
	KeySpecialCircumstancesPlaceholder: "Pakilarawan ang mga special circumstance, medical need, accessibility requirement, o iba pang accommodation na maaaring kailangan ninyo. Ang impormasyong ito ay tumutulong sa amin na magbigay ng pinakamahusay na living experience.",
	KeySubmitHousingPrefs:              "Ipasa ang mga Housing Preference",
	KeyHousingCompleted:                "Natapos na ang Housing Application",
	KeyEditPreferences:                 "I-edit ang mga Preference",
	KeyCancel:                          "Kanselahin",
}
