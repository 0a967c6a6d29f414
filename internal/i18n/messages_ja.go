package i18n

// 日语文案表
var jaMessages = map[Key]string{
	// 页头
	KeyApplicationJourney: "入学申請の道のり",
	KeyTrackProgress:      "ニューホープへの進歩を追跡しましょう！",
	KeyTotalPoints:        "総ポイント",
	KeyOverallProgress:    "全体の進捗",
	KeyStepsCompleted:     "ステップ完了",

	// 学生类型
	KeyStudentType:          "学生タイプ",
	KeyDomesticStudent:      "国内学生",
	KeyInternationalStudent: "留学生",

	// 成就
	KeyAchievements:           "実績",
	KeyGettingStarted:         "スタート",
	KeyGettingStartedDesc:     "最初の申請ステップを完了",
	KeyHalfwayHero:            "ハーフウェイヒーロー",
	KeyHalfwayHeroDesc:        "申請の50%を完了",
	KeyPointCollector:         "ポイントコレクター",
	KeyPointCollectorDesc:     "200ポイント以上を獲得",
	KeyCompletionChampion:     "完了チャンピオン",
	KeyCompletionChampionDesc: "必要なステップをすべて完了",

	// 申请步骤
	KeyApplicationSteps: "申請ステップ",
	KeyProgress:         "進捗",
	KeyRequiredSteps:    "必須ステップ",
	KeyOptional:         "オプション",
	KeyRequirements:     "要件：",
	KeyMarkComplete:     "完了としてマーク",
	KeyCompleted:        "完了！ ✓",

	// 步骤标题与描述
	KeySubmitApplication:      "申請書提出",
	KeySubmitApplicationDesc:  "ニューホープクリスチャンカレッジの申請書をオンラインで記入・提出してください。",
	KeyCompleteFAFSA:          "FAFSA完了",
	KeyCompleteFAFSADesc:      "連邦学生援助の無料申請書を提出して、経済援助の資格を決定してください。",
	KeyHousingApplication:     "住居申請",
	KeyHousingApplicationDesc: "キャンパス内住居に申請し、希望する寮を選択してください。",
	KeyI20FormRequest:         "I-20フォーム申請",
	KeyI20FormRequestDesc:     "F-1学生ビザ申請のためのI-20フォームを申請してください。",

	// 申请材料要求
	KeyPersonalInfo:    "個人情報と連絡先詳細",
	KeyAcademicHistory: "学歴と成績証明書",
	KeyEssayStatement:  "エッセイまたは個人声明",
	KeyApplicationFee:  "申請料の支払い",

	// FAFSA 材料要求
	KeySocialSecurity: "社会保障番号",
	KeyTaxReturns:     "税務申告書と財務記録",
	KeyBankStatements: "銀行残高証明書と投資記録",
	KeyFsaID:          "連邦学生援助ID（FSA ID）",

	// 住宿材料要求
	KeyHousingForm:       "住居申請フォーム",
	KeyHousingDeposit:    "住居保証金",
	KeyRoommatePrefs:     "ルームメイトの希望",
	KeyMealPlanSelection: "ミールプランの選択",

	// I-20 材料要求
	KeyFinancialProof:         "経済的支援の証明",
	KeyBankStatementsSponsors: "銀行残高証明書またはスポンサーレター",
	KeyPassportCopy:           "パスポートのコピー",
	KeySevisFee:               "SEVIS料金の支払い",

	// 操作按钮
	KeyStartApplication:     "申請開始",
	KeyCompleteFAFSABtn:     "FAFSA完了",
	KeySelectHousingOptions: "住居オプション選択",
	KeyRequestI20Form:       "I-20フォーム申請",

	// 完成提示
	KeyCongratulations:   "おめでとうございます！",
	KeyCompletedAllSteps: "ニューホープクリスチャンカレッジの必要な申請ステップをすべて完了しました！",
	KeyWelcomeDeacon:     "ディーコンファミリーへようこそ！あなたがコミュニティに参加することを楽しみにしています。",

	// 页脚
	KeyQuestionsContact: "ご質問は入学事務局までお問い合わせください",
	KeyVisitUs:          "ウェブサイトをご覧ください",

	// 住宿表单
	KeyHousingPreference:               "住居の希望",
	KeySingleDorm:                      "個室寮",
	KeySingleDormDesc:                  "学生寮の個室",
	KeyDoubleDorm:                      "相部屋寮",
	KeyDoubleDormDesc:                  "ルームメイト1人との相部屋",
	KeySuiteStyle:                      "スイートスタイル",
	KeySuiteStyleDesc:                  "共用エリア付きの個室",
	KeyOffCampus:                       "キャンパス外住居",
	KeyOffCampusDesc:                   "キャンパス外での独立した生活",
	KeyMealPlanSelectionTitle:          "ミールプラン選択",
	KeyUnlimitedMeal:                   "無制限ミールプラン",
	KeyUnlimitedMealDesc:               "食堂無制限アクセス + $200フレックスドル",
	KeyMeals19:                         "週19食",
	KeyMeals19Desc:                     "週19食 + $150フレックスドル",
	KeyMeals14:                         "週14食",
	KeyMeals14Desc:                     "週14食 + $100フレックスドル",
	KeyMeals10:                         "週10食",
	KeyMeals10Desc:                     "週10食 + $75フレックスドル",
	KeyCommuterPlan:                    "通学生プラン",
	KeyCommuterPlanDesc:                "学期50食 + $50フレックスドル",
	KeyNoMealPlan:                      "ミールプランなし",
	KeyNoMealPlanDesc:                  "ミールプランに参加しない",
	KeyLaundryFacilities:               "ランドリー施設",
	KeyLaundryInfo:                     "すべての学生寮にはコイン式ランドリー施設が完備されています。洗濯機と乾燥機は各階で利用できます。現在の料金は洗濯1回$2.00、乾燥1回$2.00です。25セント硬貨が必要です - 両替機は各寮のロビーにあります。",
	KeyLaundryAcknowledge:              "ランドリー施設の情報を確認し、関連する費用を理解しました。",
	KeyFoodAllergies:                   "食物アレルギーと食事制限",
	KeyFoodAllergiesPlaceholder:        "食物アレルギー、食事制限、特別な食事のニーズがあればお書きください。食事サービスチームが安全な食事オプションを提供するために協力します。",
	KeySpecialCircumstances:            "特別な事情や配慮",
	KeySpecialCircumstancesPlaceholder: "特別な事情、医療ニーズ、アクセシビリティ要件、その他必要な配慮があればお書きください。この情報は最高の生活体験を提供するのに役立ちます。",
	KeySubmitHousingPrefs:              "住居希望を提出",
	KeyHousingCompleted:                "住居申請完了",
	KeyEditPreferences:                 "希望を編集",
	KeyCancel:                          "キャンセル",
}
