package journey

import "github.com/miatagirl/nhccapp/internal/model"

// CanSubmitI20 I-20 申请表能否提交。
// 除担保信（HasSponsorLetter）外，全部字段与材料确认均为必填。
func CanSubmitI20(form model.I20RequestForm) bool {
	return validate.Struct(form) == nil
}
