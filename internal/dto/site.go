package dto

// ── 外部链接与站点信息 ──

// StepLinkResponse 步骤外部跳转链接
type StepLinkResponse struct {
	StepID string `json:"step_id"`
	URL    string `json:"url"`
	Label  string `json:"label"`
}

// SiteInfoResponse 联系方式
type SiteInfoResponse struct {
	AdmissionsEmail string `json:"admissions_email"`
	WebsiteURL      string `json:"website_url"`
	ContactText     string `json:"contact_text"`
	VisitText       string `json:"visit_text"`
}

// ── 住宿选项 ──

// OptionResponse 下拉/单选选项
type OptionResponse struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// HousingOptionsResponse 住宿表单可选项
type HousingOptionsResponse struct {
	HousingTypes []OptionResponse `json:"housing_types"`
	MealPlans    []OptionResponse `json:"meal_plans"`
	LaundryInfo  string           `json:"laundry_info"`
}

// ── 多语言 ──

// LanguageResponse 可选语言
type LanguageResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

// MessagesResponse 当前语言完整文案表
type MessagesResponse struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}
