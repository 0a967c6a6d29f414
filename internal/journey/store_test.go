package journey

import (
	"reflect"
	"testing"

	"github.com/miatagirl/nhccapp/internal/model"
)

func TestStore_InitialState(t *testing.T) {
	s := NewStore(true)
	st := s.GetState()
	if len(st.Steps) != 4 {
		t.Fatalf("期望 4 个步骤，实际=%d", len(st.Steps))
	}
	if !st.Profile.IsInternational {
		t.Error("IsInternational 应为 true")
	}
	if st.Profile.TotalSteps != 3 || st.Profile.CompletedSteps != 0 || st.Profile.TotalPoints != 0 {
		t.Errorf("初始聚合值错误: %+v", st.Profile.Progress)
	}
	if len(st.Achievements()) != 4 {
		t.Errorf("期望 4 项成就，实际=%d", len(st.Achievements()))
	}
}

func TestStore_ToggleRecomputesAggregate(t *testing.T) {
	s := NewStore(false)
	res := s.Dispatch(ToggleStep{StepID: model.StepApplication})
	if res.Outcome != OutcomeApplied || !res.Changed() {
		t.Fatalf("期望 applied，实际=%s", res.Outcome)
	}
	if res.State.Profile.CompletedSteps != 1 || res.State.Profile.TotalPoints != 100 {
		t.Errorf("切换后聚合值应立即更新: %+v", res.State.Profile.Progress)
	}
	if !reflect.DeepEqual(res.State, s.GetState()) {
		t.Error("Dispatch 返回的状态应与 GetState 一致")
	}
}

func TestStore_ToggleUnknownStep(t *testing.T) {
	s := NewStore(false)
	s.Dispatch(ToggleStep{StepID: model.StepFAFSA})
	before := s.GetState()

	res := s.Dispatch(ToggleStep{StepID: "does-not-exist"})
	if res.Outcome != OutcomeUnchanged || res.Reason != ReasonUnknownStep {
		t.Errorf("期望 unchanged/unknown_step，实际=%s/%s", res.Outcome, res.Reason)
	}
	if !reflect.DeepEqual(before, s.GetState()) {
		t.Error("未知步骤不应改变状态")
	}
}

func TestStore_SetStudentTypeResets(t *testing.T) {
	s := NewStore(false)
	s.Dispatch(ToggleStep{StepID: model.StepApplication})
	s.Dispatch(ToggleStep{StepID: model.StepHousing})

	res := s.Dispatch(SetStudentType{IsInternational: true})
	if len(res.State.Steps) != 4 {
		t.Fatalf("切换为国际学生后应有 4 个步骤，实际=%d", len(res.State.Steps))
	}
	for _, step := range res.State.Steps {
		if step.Completed {
			t.Errorf("重建目录后 %s 应为未完成", step.ID)
		}
	}
	if res.State.Profile.TotalPoints != 0 {
		t.Errorf("重建目录后积分应清零，实际=%d", res.State.Profile.TotalPoints)
	}

	res = s.Dispatch(SetStudentType{IsInternational: false})
	if len(res.State.Steps) != 3 || res.State.Profile.IsInternational {
		t.Error("切换回国内学生后应只有 3 个步骤")
	}
}

func TestStore_SubmitHousing_Rejected(t *testing.T) {
	s := NewStore(false)
	before := s.GetState()

	res := s.Dispatch(SubmitHousing{Form: model.HousingPreferenceForm{
		HousingType:         "",
		MealPlan:            model.MealPlanUnlimited,
		LaundryAcknowledged: true,
	}})
	if res.Outcome != OutcomeRejected || res.Reason != ReasonFormIncomplete {
		t.Errorf("期望 rejected/form_incomplete，实际=%s/%s", res.Outcome, res.Reason)
	}
	if !reflect.DeepEqual(before, s.GetState()) {
		t.Error("校验失败不应改变状态")
	}
}

func TestStore_SubmitHousing_Accepted(t *testing.T) {
	s := NewStore(false)
	res := s.Dispatch(SubmitHousing{Form: validHousingForm()})
	if res.Outcome != OutcomeApplied {
		t.Fatalf("期望 applied，实际=%s/%s", res.Outcome, res.Reason)
	}
	housing, _ := model.FindStep(res.State.Steps, model.StepHousing)
	if !housing.Completed {
		t.Error("提交成功后住宿步骤应为已完成")
	}
	if res.State.Profile.TotalPoints != PointsHousing {
		t.Errorf("期望积分=%d，实际=%d", PointsHousing, res.State.Profile.TotalPoints)
	}
}

func TestStore_SubmitHousing_ResubmitKeepsComplete(t *testing.T) {
	s := NewStore(false)
	s.Dispatch(SubmitHousing{Form: validHousingForm()})

	res := s.Dispatch(SubmitHousing{Form: validHousingForm()})
	if res.Outcome != OutcomeUnchanged || res.Reason != ReasonAlreadyComplete {
		t.Errorf("期望 unchanged/already_complete，实际=%s/%s", res.Outcome, res.Reason)
	}
	housing, _ := model.FindStep(res.State.Steps, model.StepHousing)
	if !housing.Completed {
		t.Error("重复提交不应把住宿步骤改回未完成")
	}
}

func TestStore_SubmitHousing_AfterManualUncomplete(t *testing.T) {
	s := NewStore(false)
	s.Dispatch(SubmitHousing{Form: validHousingForm()})
	s.Dispatch(ToggleStep{StepID: model.StepHousing})

	res := s.Dispatch(SubmitHousing{Form: validHousingForm()})
	if res.Outcome != OutcomeApplied {
		t.Errorf("手动取消后再次提交应重新完成，实际=%s", res.Outcome)
	}
}

func TestStore_SubmitI20(t *testing.T) {
	domestic := NewStore(false)
	res := domestic.Dispatch(SubmitI20{Form: validI20Form()})
	if res.Outcome != OutcomeRejected || res.Reason != ReasonStepUnavailable {
		t.Errorf("国内学生提交 I-20 期望 rejected/step_unavailable，实际=%s/%s", res.Outcome, res.Reason)
	}

	intl := NewStore(true)
	res = intl.Dispatch(SubmitI20{Form: model.I20RequestForm{}})
	if res.Outcome != OutcomeRejected || res.Reason != ReasonFormIncomplete {
		t.Errorf("空表单期望 rejected/form_incomplete，实际=%s/%s", res.Outcome, res.Reason)
	}

	res = intl.Dispatch(SubmitI20{Form: validI20Form()})
	if res.Outcome != OutcomeApplied {
		t.Fatalf("期望 applied，实际=%s/%s", res.Outcome, res.Reason)
	}
	if res.State.Profile.TotalPoints != PointsI20 || res.State.Profile.CompletedSteps != 0 {
		t.Errorf("i20 只加积分不计入完成步骤: %+v", res.State.Profile.Progress)
	}
}

func TestRestore(t *testing.T) {
	steps := Toggle(BuildCatalog(true), model.StepFAFSA)
	s := Restore(true, steps)
	st := s.GetState()
	if st.Profile.TotalPoints != PointsFAFSA {
		t.Errorf("恢复后积分期望=%d，实际=%d", PointsFAFSA, st.Profile.TotalPoints)
	}

	steps[1].Completed = false
	if !s.GetState().Steps[1].Completed {
		t.Error("Restore 应复制快照，不与调用方共享")
	}
}

func TestRestore_InconsistentSnapshotRebuilds(t *testing.T) {
	// 快照为国内目录，但标记为国际学生
	steps := Toggle(BuildCatalog(false), model.StepApplication)
	st := Restore(true, steps).GetState()
	if len(st.Steps) != 4 {
		t.Fatalf("不一致快照应重建为 4 个步骤，实际=%d", len(st.Steps))
	}
	if st.Profile.TotalPoints != 0 {
		t.Error("重建后所有步骤应为未完成")
	}
}

func TestEventName(t *testing.T) {
	if EventName(ToggleStep{}) != "toggle_step" {
		t.Error("ToggleStep 事件名错误")
	}
	if EventName(nil) != "unknown" {
		t.Error("nil 事件名应为 unknown")
	}
}
