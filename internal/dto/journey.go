package dto

import "github.com/miatagirl/nhccapp/internal/model"

// ── 会话模块请求 ──

// CreateSessionRequest 创建会话请求（请求体可省略，默认国内学生）
type CreateSessionRequest struct {
	IsInternational bool `json:"is_international"`
}

// SetStudentTypeRequest 切换学生类型请求
type SetStudentTypeRequest struct {
	IsInternational *bool `json:"is_international" binding:"required"`
}

// SubmitHousingRequest 住宿偏好表单
// 枚举值与勾选项由业务层校验，缺失时返回"表单不完整"而非参数错误
type SubmitHousingRequest struct {
	HousingType          string `json:"housing_type"          binding:"max=32"`
	MealPlan             string `json:"meal_plan"             binding:"max=32"`
	FoodAllergies        string `json:"food_allergies"        binding:"max=1000"`
	SpecialCircumstances string `json:"special_circumstances" binding:"max=2000"`
	LaundryAcknowledged  bool   `json:"laundry_acknowledged"`
}

// ToForm 转换为领域表单
func (r *SubmitHousingRequest) ToForm() model.HousingPreferenceForm {
	return model.HousingPreferenceForm{
		HousingType:          model.HousingType(r.HousingType),
		MealPlan:             model.MealPlan(r.MealPlan),
		FoodAllergies:        r.FoodAllergies,
		SpecialCircumstances: r.SpecialCircumstances,
		LaundryAcknowledged:  r.LaundryAcknowledged,
	}
}

// SubmitI20Request I-20 申请表
type SubmitI20Request struct {
	FirstName            string `json:"first_name"             binding:"max=100"`
	LastName             string `json:"last_name"              binding:"max=100"`
	DateOfBirth          string `json:"date_of_birth"          binding:"max=10"`
	CountryOfBirth       string `json:"country_of_birth"       binding:"max=100"`
	CountryOfCitizenship string `json:"country_of_citizenship" binding:"max=100"`
	PassportNumber       string `json:"passport_number"        binding:"max=50"`
	PassportExpiration   string `json:"passport_expiration"    binding:"max=10"`

	MailingAddress string `json:"mailing_address" binding:"max=500"`
	City           string `json:"city"            binding:"max=100"`
	State          string `json:"state"           binding:"max=100"`
	PostalCode     string `json:"postal_code"     binding:"max=20"`
	Country        string `json:"country"         binding:"max=100"`
	Email          string `json:"email"           binding:"max=254"`
	Phone          string `json:"phone"           binding:"max=50"`

	ProgramOfStudy     string `json:"program_of_study"    binding:"max=200"`
	DegreeLevel        string `json:"degree_level"        binding:"max=32"`
	ExpectedStartDate  string `json:"expected_start_date" binding:"max=10"`
	ExpectedGraduation string `json:"expected_graduation" binding:"max=10"`

	FinancialSponsor        string `json:"financial_sponsor"         binding:"max=32"`
	SponsorRelationship     string `json:"sponsor_relationship"      binding:"max=100"`
	EstimatedAnnualExpenses string `json:"estimated_annual_expenses" binding:"max=20"`
	BankStatementAmount     string `json:"bank_statement_amount"     binding:"max=20"`

	HasPassportCopy   bool `json:"has_passport_copy"`
	HasBankStatements bool `json:"has_bank_statements"`
	HasSponsorLetter  bool `json:"has_sponsor_letter"`
	HasTranscripts    bool `json:"has_transcripts"`
}

// ToForm 转换为领域表单
func (r *SubmitI20Request) ToForm() model.I20RequestForm {
	return model.I20RequestForm{
		FirstName:               r.FirstName,
		LastName:                r.LastName,
		DateOfBirth:             r.DateOfBirth,
		CountryOfBirth:          r.CountryOfBirth,
		CountryOfCitizenship:    r.CountryOfCitizenship,
		PassportNumber:          r.PassportNumber,
		PassportExpiration:      r.PassportExpiration,
		MailingAddress:          r.MailingAddress,
		City:                    r.City,
		State:                   r.State,
		PostalCode:              r.PostalCode,
		Country:                 r.Country,
		Email:                   r.Email,
		Phone:                   r.Phone,
		ProgramOfStudy:          r.ProgramOfStudy,
		DegreeLevel:             model.DegreeLevel(r.DegreeLevel),
		ExpectedStartDate:       r.ExpectedStartDate,
		ExpectedGraduation:      r.ExpectedGraduation,
		FinancialSponsor:        model.SponsorType(r.FinancialSponsor),
		SponsorRelationship:     r.SponsorRelationship,
		EstimatedAnnualExpenses: r.EstimatedAnnualExpenses,
		BankStatementAmount:     r.BankStatementAmount,
		HasPassportCopy:         r.HasPassportCopy,
		HasBankStatements:       r.HasBankStatements,
		HasSponsorLetter:        r.HasSponsorLetter,
		HasTranscripts:          r.HasTranscripts,
	}
}

// ── 会话模块响应 ──

// StepResponse 步骤信息（文案已按当前语言翻译）
type StepResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ActionLabel  string   `json:"action_label"`
	Completed    bool     `json:"completed"`
	Optional     bool     `json:"optional"`
	Points       int      `json:"points"`
	Requirements []string `json:"requirements"`
	HasLink      bool     `json:"has_link"` // 是否有外部跳转链接
	HasForm      bool     `json:"has_form"` // 是否通过表单完成
}

// ProfileResponse 学生档案与进度聚合
type ProfileResponse struct {
	IsInternational     bool   `json:"is_international"`
	StudentType         string `json:"student_type"` // 已翻译的学生类型
	TotalSteps          int    `json:"total_steps"`
	CompletedSteps      int    `json:"completed_steps"`
	TotalPoints         int    `json:"total_points"`
	ProgressPercent     int    `json:"progress_percent"`
	AllRequiredComplete bool   `json:"all_required_complete"`
}

// AchievementResponse 成就徽章
type AchievementResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Unlocked      bool   `json:"unlocked"`
	DisplayPoints int    `json:"display_points"`
}

// CompletionBanner 全部必做步骤完成后的祝贺信息
type CompletionBanner struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Welcome string `json:"welcome"`
}

// SessionResponse 会话完整状态（每次变更后整体返回）
type SessionResponse struct {
	SessionID    string                `json:"session_id"`
	Language     string                `json:"language"`
	Version      int64                 `json:"version"`
	Outcome      string                `json:"outcome,omitempty"` // applied | unchanged | rejected
	Reason       string                `json:"reason,omitempty"`
	Steps        []StepResponse        `json:"steps"`
	Profile      ProfileResponse       `json:"profile"`
	Achievements []AchievementResponse `json:"achievements"`
	Completion   *CompletionBanner     `json:"completion,omitempty"`
	ExpiresAt    string                `json:"expires_at"`
}
