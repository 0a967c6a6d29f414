package journey

import (
	"testing"

	"github.com/miatagirl/nhccapp/internal/model"
)

func TestBuildCatalog_Domestic(t *testing.T) {
	steps := BuildCatalog(false)
	if len(steps) != 3 {
		t.Fatalf("国内学生应有 3 个步骤，实际=%d", len(steps))
	}
	want := []model.StepID{model.StepApplication, model.StepFAFSA, model.StepHousing}
	for i, id := range want {
		if steps[i].ID != id {
			t.Errorf("第 %d 项期望=%s，实际=%s", i, id, steps[i].ID)
		}
		if steps[i].Optional {
			t.Errorf("%s 不应为可选步骤", id)
		}
		if steps[i].Completed {
			t.Errorf("%s 初始应为未完成", id)
		}
	}
}

func TestBuildCatalog_International(t *testing.T) {
	steps := BuildCatalog(true)
	if len(steps) != 4 {
		t.Fatalf("国际学生应有 4 个步骤，实际=%d", len(steps))
	}
	last := steps[3]
	if last.ID != model.StepI20 {
		t.Errorf("第 4 项期望=i20，实际=%s", last.ID)
	}
	if !last.Optional {
		t.Error("i20 应为可选步骤")
	}
	for _, s := range steps {
		if s.Completed {
			t.Errorf("%s 初始应为未完成", s.ID)
		}
	}
}

func TestBuildCatalog_Points(t *testing.T) {
	want := map[model.StepID]int{
		model.StepApplication: 100,
		model.StepFAFSA:       75,
		model.StepHousing:     50,
		model.StepI20:         75,
	}
	for _, s := range BuildCatalog(true) {
		if s.Points != want[s.ID] {
			t.Errorf("%s 积分期望=%d，实际=%d", s.ID, want[s.ID], s.Points)
		}
		if len(s.Requirements) != 4 {
			t.Errorf("%s 应有 4 条材料要求，实际=%d", s.ID, len(s.Requirements))
		}
	}
}

func TestBuildCatalog_UniqueIDs(t *testing.T) {
	for _, intl := range []bool{false, true} {
		seen := map[model.StepID]bool{}
		for _, s := range BuildCatalog(intl) {
			if seen[s.ID] {
				t.Errorf("isInternational=%v 时步骤 ID 重复: %s", intl, s.ID)
			}
			seen[s.ID] = true
		}
	}
}

func TestBuildCatalog_FreshSlices(t *testing.T) {
	a := BuildCatalog(false)
	a[0].Completed = true
	a[0].Requirements[0] = "mutated"

	b := BuildCatalog(false)
	if b[0].Completed {
		t.Error("每次构建应返回独立的步骤列表")
	}
	if b[0].Requirements[0] == "mutated" {
		t.Error("材料要求列表不应共享底层数组")
	}
}
