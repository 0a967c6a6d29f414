package i18n

// 葡萄牙语文案表
var ptMessages = map[Key]string{
	// 页头
	KeyApplicationJourney: "Jornada de Inscrição",
	KeyTrackProgress:      "Acompanhe seu progresso para New Hope!",
	KeyTotalPoints:        "Pontos Totais",
	KeyOverallProgress:    "Progresso Geral",
	KeyStepsCompleted:     "etapas concluídas",

	// 学生类型
	KeyStudentType:          "Tipo de Estudante",
	KeyDomesticStudent:      "Estudante Nacional",
	KeyInternationalStudent: "Estudante Internacional",

	// 成就
	KeyAchievements:           "Conquistas",
	KeyGettingStarted:         "Começando",
	KeyGettingStartedDesc:     "Complete sua primeira etapa de inscrição",
	KeyHalfwayHero:            "Herói do Meio Caminho",
	KeyHalfwayHeroDesc:        "Complete 50% da sua inscrição",
	KeyPointCollector:         "Coletor de Pontos",
	KeyPointCollectorDesc:     "Ganhe 200+ pontos",
	KeyCompletionChampion:     "Campeão da Conclusão",
	KeyCompletionChampionDesc: "Complete todas as etapas obrigatórias",

	// 申请步骤
	KeyApplicationSteps: "Etapas da Inscrição",
	KeyProgress:         "Progresso",
	KeyRequiredSteps:    "Etapas Obrigatórias",
	KeyOptional:         "Opcional",
	KeyRequirements:     "Requisitos:",
	KeyMarkComplete:     "Marcar como Concluído",
	KeyCompleted:        "Concluído! ✓",

	// 步骤标题与描述
	KeySubmitApplication:      "Enviar Inscrição",
	KeySubmitApplicationDesc:  "Complete e envie sua inscrição online para o New Hope Christian College.",
	KeyCompleteFAFSA:          "Completar FAFSA",
	KeyCompleteFAFSADesc:      "Preencha sua Solicitação Gratuita de Auxílio Federal ao Estudante para determinar elegibilidade para auxílio financeiro.",
	KeyHousingApplication:     "Inscrição para Moradia",
	KeyHousingApplicationDesc: "Inscreva-se para moradia no campus e selecione seu dormitório preferido.",
	KeyI20FormRequest:         "Solicitação de Formulário I-20",
	KeyI20FormRequestDesc:     "Solicite seu formulário I-20 para aplicação de visto de estudante F-1.",

	// 申请材料要求
	KeyPersonalInfo:    "Informações pessoais e detalhes de contato",
	KeyAcademicHistory: "Histórico acadêmico e transcrições",
	KeyEssayStatement:  "Ensaio ou declaração pessoal",
	KeyApplicationFee:  "Pagamento da taxa de inscrição",

	// FAFSA 材料要求
	KeySocialSecurity: "Número do Seguro Social",
	KeyTaxReturns:     "Declarações de imposto e registros financeiros",
	KeyBankStatements: "Extratos bancários e registros de investimento",
	KeyFsaID:          "ID de Auxílio Federal ao Estudante (FSA ID)",

	// 住宿材料要求
	KeyHousingForm:       "Formulário de inscrição para moradia",
	KeyHousingDeposit:    "Depósito de moradia",
	KeyRoommatePrefs:     "Preferências de colega de quarto",
	KeyMealPlanSelection: "Seleção de plano de refeições",

	// I-20 材料要求
	KeyFinancialProof:         "Comprovante de apoio financeiro",
	KeyBankStatementsSponsors: "Extratos bancários ou carta do patrocinador",
	KeyPassportCopy:           "Cópia do passaporte",
	KeySevisFee:               "Pagamento da taxa SEVIS",

	// 操作按钮
	KeyStartApplication:     "Iniciar Inscrição",
	KeyCompleteFAFSABtn:     "Completar FAFSA",
	KeySelectHousingOptions: "Selecionar Opções de Moradia",
	KeyRequestI20Form:       "Solicitar Formulário I-20",

	// 完成提示
	KeyCongratulations:   "Parabéns!",
	KeyCompletedAllSteps: "Você completou todas as etapas obrigatórias de inscrição para o New Hope Christian College!",
	KeyWelcomeDeacon:     "Bem-vindo à família Deacon! Estamos animados para tê-lo em nossa comunidade.",

	// 页脚
	KeyQuestionsContact: "Dúvidas? Entre em contato com nosso Escritório de Admissões em",
	KeyVisitUs:          "Visite-nos em",

	// 住宿表单
	KeyHousingPreference:               "Preferência de Moradia",
	KeySingleDorm:                      "Quarto Individual no Dormitório",
	KeySingleDormDesc:                  "Quarto privado no hall de residência",
	KeyDoubleDorm:                      "Quarto Duplo no Dormitório",
	KeyDoubleDormDesc:                  "Quarto compartilhado com um colega",
	KeySuiteStyle:                      "Estilo Suíte",
	KeySuiteStyleDesc:                  "Quarto privado com área comum compartilhada",
	KeyOffCampus:                       "Moradia Fora do Campus",
	KeyOffCampusDesc:                   "Vivendo independentemente fora do campus",
	KeyMealPlanSelectionTitle:          "Seleção de Plano de Refeições",
	KeyUnlimitedMeal:                   "Plano de Refeições Ilimitado",
	KeyUnlimitedMealDesc:               "Acesso ilimitado ao refeitório + $200 dólares flex",
	KeyMeals19:                         "19 Refeições/Semana",
	KeyMeals19Desc:                     "19 refeições por semana + $150 dólares flex",
	KeyMeals14:                         "14 Refeições/Semana",
	KeyMeals14Desc:                     "14 refeições por semana + $100 dólares flex",
	KeyMeals10:                         "10 Refeições/Semana",
	KeyMeals10Desc:                     "10 refeições por semana + $75 dólares flex",
	KeyCommuterPlan:                    "Plano para Estudantes Externos",
	KeyCommuterPlanDesc:                "50 refeições por semestre + $50 dólares flex",
	KeyNoMealPlan:                      "Sem Plano de Refeições",
	KeyNoMealPlanDesc:                  "Não participando do plano de refeições",
	KeyLaundryFacilities:               "Instalações de Lavanderia",
	KeyLaundryInfo:                     "Todos os halls de residência estão equipados com instalações de lavanderia operadas por moedas. Máquinas de lavar e secar estão disponíveis em cada andar. As tarifas atuais são $2,00 por ciclo de lavagem e $2,00 por ciclo de secagem. Moedas de 25 centavos são necessárias - máquinas de troco estão disponíveis no lobby de cada hall de residência.",
	KeyLaundryAcknowledge:              "Reconheço as informações sobre as instalações de lavanderia e entendo os custos envolvidos.",
	KeyFoodAllergies:                   "Alergias Alimentares e Restrições Dietéticas",
	KeyFoodAllergiesPlaceholder:        "Por favor, liste quaisquer alergias alimentares, restrições dietéticas ou necessidades dietéticas especiais. Nossa equipe de serviços de alimentação trabalhará com você para garantir opções de refeições seguras.",
	KeySpecialCircumstances:            "Circunstâncias Especiais ou Acomodações",
	KeySpecialCircumstancesPlaceholder: "Por favor, descreva quaisquer circunstâncias especiais, necessidades médicas, requisitos de acessibilidade ou outras acomodações que você possa precisar. Esta informação nos ajuda a fornecer a melhor experiência de vida possível.",
	KeySubmitHousingPrefs:              "Enviar Preferências de Moradia",
	KeyHousingCompleted:                "Inscrição para Moradia Concluída",
	KeyEditPreferences:                 "Editar Preferências",
	KeyCancel:                          "Cancelar",
}
