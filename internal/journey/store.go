package journey

import "github.com/miatagirl/nhccapp/internal/model"

// ── 事件 ──

// Event 用户动作；Store 只通过 Dispatch 接收事件
type Event interface {
	eventName() string
}

// ToggleStep 切换某一步骤的完成状态
type ToggleStep struct {
	StepID model.StepID
}

// SetStudentType 设置学生类型，重建整个目录并清空所有完成状态
type SetStudentType struct {
	IsInternational bool
}

// SubmitHousing 提交住宿偏好表单
type SubmitHousing struct {
	Form model.HousingPreferenceForm
}

// SubmitI20 提交 I-20 申请表
type SubmitI20 struct {
	Form model.I20RequestForm
}

func (ToggleStep) eventName() string     { return "toggle_step" }
func (SetStudentType) eventName() string { return "set_student_type" }
func (SubmitHousing) eventName() string  { return "submit_housing" }
func (SubmitI20) eventName() string      { return "submit_i20" }

// EventName 返回事件名（用于日志与指标标签）
func EventName(ev Event) string {
	if ev == nil {
		return "unknown"
	}
	return ev.eventName()
}

// ── 结果 ──

// Outcome 事件处理结果
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"   // 状态已改变
	OutcomeUnchanged Outcome = "unchanged" // 已接受但状态未变
	OutcomeRejected  Outcome = "rejected"  // 被拒绝，状态未变
)

// Reason 未改变或被拒绝的原因
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnknownStep     Reason = "unknown_step"     // 切换目标不存在
	ReasonAlreadyComplete Reason = "already_complete" // 表单重复提交，步骤已完成
	ReasonFormIncomplete  Reason = "form_incomplete"  // 必填项缺失
	ReasonStepUnavailable Reason = "step_unavailable" // 当前目录中没有该步骤
)

// State 对外暴露的当前状态
type State struct {
	Steps   []model.ApplicationStep
	Profile model.StudentProfile
}

// Achievements 按当前聚合值推导成就
func (s State) Achievements() []model.Achievement {
	return EvaluateAchievements(s.Profile.Progress)
}

// Result Dispatch 的返回值
type Result struct {
	State   State
	Outcome Outcome
	Reason  Reason
}

// Changed 事件是否改变了状态
func (r Result) Changed() bool {
	return r.Outcome == OutcomeApplied
}

// ── Store ──

// Store 单个会话的状态持有者。
// 只暴露 GetState / Dispatch；每个事件处理完毕（步骤变更 + 聚合重算）后才返回。
// Store 本身不加锁，由调用方保证同一会话的事件串行处理。
type Store struct {
	isInternational bool
	steps           []model.ApplicationStep
}

// NewStore 按学生类型创建全新状态
func NewStore(isInternational bool) *Store {
	return &Store{
		isInternational: isInternational,
		steps:           BuildCatalog(isInternational),
	}
}

// Restore 从快照恢复状态；快照与学生类型不一致时重建目录
func Restore(isInternational bool, steps []model.ApplicationStep) *Store {
	if !consistent(isInternational, steps) {
		return NewStore(isInternational)
	}
	return &Store{
		isInternational: isInternational,
		steps:           model.CloneSteps(steps),
	}
}

// consistent 快照是否满足目录不变式：ID 唯一、必做步骤齐全、i20 当且仅当国际学生
func consistent(isInternational bool, steps []model.ApplicationStep) bool {
	want := BuildCatalog(isInternational)
	if len(steps) != len(want) {
		return false
	}
	for i := range want {
		if steps[i].ID != want[i].ID || steps[i].Optional != want[i].Optional || steps[i].Points != want[i].Points {
			return false
		}
	}
	return true
}

// GetState 返回当前状态（副本），聚合值每次重新计算
func (s *Store) GetState() State {
	return State{
		Steps:   model.CloneSteps(s.steps),
		Profile: Profile(s.isInternational, s.steps),
	}
}

// Dispatch 处理一个事件并返回处理后的状态
func (s *Store) Dispatch(ev Event) Result {
	outcome, reason := s.apply(ev)
	return Result{
		State:   s.GetState(),
		Outcome: outcome,
		Reason:  reason,
	}
}

func (s *Store) apply(ev Event) (Outcome, Reason) {
	switch e := ev.(type) {
	case ToggleStep:
		if _, ok := model.FindStep(s.steps, e.StepID); !ok {
			return OutcomeUnchanged, ReasonUnknownStep
		}
		s.steps = Toggle(s.steps, e.StepID)
		return OutcomeApplied, ReasonNone

	case SetStudentType:
		s.isInternational = e.IsInternational
		s.steps = BuildCatalog(e.IsInternational)
		return OutcomeApplied, ReasonNone

	case SubmitHousing:
		if !CanSubmitHousing(e.Form) {
			return OutcomeRejected, ReasonFormIncomplete
		}
		return s.completeViaToggle(model.StepHousing)

	case SubmitI20:
		if _, ok := model.FindStep(s.steps, model.StepI20); !ok {
			return OutcomeRejected, ReasonStepUnavailable
		}
		if !CanSubmitI20(e.Form) {
			return OutcomeRejected, ReasonFormIncomplete
		}
		return s.completeViaToggle(model.StepI20)
	}
	return OutcomeUnchanged, ReasonNone
}

// completeViaToggle 表单提交成功后通过 Toggle 完成步骤；
// 步骤已完成时不再切换，避免重复提交把步骤改回未完成。
func (s *Store) completeViaToggle(id model.StepID) (Outcome, Reason) {
	step, ok := model.FindStep(s.steps, id)
	if !ok {
		return OutcomeRejected, ReasonStepUnavailable
	}
	if step.Completed {
		return OutcomeUnchanged, ReasonAlreadyComplete
	}
	s.steps = Toggle(s.steps, id)
	return OutcomeApplied, ReasonNone
}
