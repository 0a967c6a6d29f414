package model

import "github.com/miatagirl/nhccapp/internal/i18n"

// StepID 申请步骤标识（封闭集合）
type StepID string

const (
	StepApplication StepID = "application"
	StepFAFSA       StepID = "fafsa"
	StepHousing     StepID = "housing"
	StepI20         StepID = "i20"
)

// Valid 判断是否为已知步骤
func (id StepID) Valid() bool {
	switch id {
	case StepApplication, StepFAFSA, StepHousing, StepI20:
		return true
	}
	return false
}

// ApplicationStep 申请清单中的一个步骤
// Title / Description / Requirements 为文案键，由展示层翻译
type ApplicationStep struct {
	ID           StepID     `json:"id"`
	Title        i18n.Key   `json:"title"`
	Description  i18n.Key   `json:"description"`
	ActionLabel  i18n.Key   `json:"action_label"`
	Completed    bool       `json:"completed"`
	Optional     bool       `json:"optional,omitempty"`
	Points       int        `json:"points"`
	Requirements []i18n.Key `json:"requirements,omitempty"`
}

// CloneSteps 深拷贝步骤列表，避免调用方共享底层数组
func CloneSteps(steps []ApplicationStep) []ApplicationStep {
	if steps == nil {
		return nil
	}
	out := make([]ApplicationStep, len(steps))
	for i, s := range steps {
		out[i] = s
		if s.Requirements != nil {
			out[i].Requirements = append([]i18n.Key(nil), s.Requirements...)
		}
	}
	return out
}

// FindStep 按 ID 查找步骤
func FindStep(steps []ApplicationStep, id StepID) (ApplicationStep, bool) {
	for _, s := range steps {
		if s.ID == id {
			return s, true
		}
	}
	return ApplicationStep{}, false
}
