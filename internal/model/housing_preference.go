package model

// HousingType 住宿类型
type HousingType string

const (
	HousingSingle    HousingType = "single"
	HousingDouble    HousingType = "double"
	HousingSuite     HousingType = "suite"
	HousingOffCampus HousingType = "off-campus"
)

// MealPlan 餐饮计划
type MealPlan string

const (
	MealPlanUnlimited MealPlan = "unlimited"
	MealPlan19PerWeek MealPlan = "19/week"
	MealPlan14PerWeek MealPlan = "14/week"
	MealPlan10PerWeek MealPlan = "10/week"
	MealPlanCommuter  MealPlan = "commuter"
	MealPlanNone      MealPlan = "none"
)

// HousingTypes 全部住宿类型（展示顺序）
var HousingTypes = []HousingType{HousingSingle, HousingDouble, HousingSuite, HousingOffCampus}

// MealPlans 全部餐饮计划（展示顺序）
var MealPlans = []MealPlan{
	MealPlanUnlimited, MealPlan19PerWeek, MealPlan14PerWeek,
	MealPlan10PerWeek, MealPlanCommuter, MealPlanNone,
}

// HousingPreferenceForm 住宿偏好表单（临时对象，提交或取消后即丢弃）
type HousingPreferenceForm struct {
	HousingType          HousingType `json:"housing_type"          validate:"required,oneof=single double suite off-campus"`
	MealPlan             MealPlan    `json:"meal_plan"             validate:"required,oneof=unlimited 19/week 14/week 10/week commuter none"`
	FoodAllergies        string      `json:"food_allergies"`
	SpecialCircumstances string      `json:"special_circumstances"`
	LaundryAcknowledged  bool        `json:"laundry_acknowledged"  validate:"required"` // 必须为 true
}
