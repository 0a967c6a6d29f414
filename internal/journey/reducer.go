package journey

import "github.com/miatagirl/nhccapp/internal/model"

// Toggle 切换指定步骤的完成状态，返回新的步骤列表，原列表不变。
// stepID 不存在时原样返回副本（静默无操作），重复调用不会出错。
func Toggle(steps []model.ApplicationStep, stepID model.StepID) []model.ApplicationStep {
	out := model.CloneSteps(steps)
	for i := range out {
		if out[i].ID == stepID {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}
