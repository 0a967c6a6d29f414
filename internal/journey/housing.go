package journey

import "github.com/miatagirl/nhccapp/internal/model"

// CanSubmitHousing 住宿偏好表单能否提交：
// 住宿类型、餐饮计划均为合法枚举值，且已确认洗衣须知。
// 食物过敏、特殊情况为选填项，不参与校验。
func CanSubmitHousing(form model.HousingPreferenceForm) bool {
	return validate.Struct(form) == nil
}
