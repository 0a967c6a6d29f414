package journey

import (
	"reflect"
	"testing"

	"github.com/miatagirl/nhccapp/internal/model"
)

func TestToggle_FlipsOnlyTarget(t *testing.T) {
	steps := BuildCatalog(true)
	got := Toggle(steps, model.StepFAFSA)

	for _, s := range got {
		want := s.ID == model.StepFAFSA
		if s.Completed != want {
			t.Errorf("%s Completed 期望=%v，实际=%v", s.ID, want, s.Completed)
		}
	}
	if steps[1].Completed {
		t.Error("Toggle 不应修改原列表")
	}
}

func TestToggle_RoundTrip(t *testing.T) {
	for _, id := range []model.StepID{model.StepApplication, model.StepFAFSA, model.StepHousing, model.StepI20} {
		before := Toggle(BuildCatalog(true), model.StepApplication)
		beforeAgg := Aggregate(before)

		after := Toggle(Toggle(before, id), id)
		if !reflect.DeepEqual(before, after) {
			t.Errorf("切换 %s 两次后步骤列表应复原", id)
		}
		if Aggregate(after) != beforeAgg {
			t.Errorf("切换 %s 两次后聚合值应复原", id)
		}
	}
}

func TestToggle_UnknownStepIsNoop(t *testing.T) {
	steps := Toggle(BuildCatalog(false), model.StepHousing)
	beforeAgg := Aggregate(steps)

	got := Toggle(steps, model.StepID("does-not-exist"))
	if !reflect.DeepEqual(steps, got) {
		t.Error("未知步骤 ID 不应改变步骤列表")
	}
	if Aggregate(got) != beforeAgg {
		t.Error("未知步骤 ID 不应改变聚合值")
	}
}

func TestToggle_I20AbsentForDomestic(t *testing.T) {
	steps := BuildCatalog(false)
	got := Toggle(steps, model.StepI20)
	if !reflect.DeepEqual(steps, got) {
		t.Error("国内学生目录中没有 i20，切换应为无操作")
	}
}
