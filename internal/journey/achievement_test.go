package journey

import (
	"testing"

	"github.com/miatagirl/nhccapp/internal/model"
)

func unlocked(achievements []model.Achievement, id model.AchievementID) bool {
	for _, a := range achievements {
		if a.ID == id {
			return a.Unlocked
		}
	}
	return false
}

func TestEvaluateAchievements_FixedOrder(t *testing.T) {
	got := EvaluateAchievements(model.Progress{})
	want := []struct {
		id     model.AchievementID
		points int
	}{
		{model.AchievementGettingStarted, 50},
		{model.AchievementHalfwayHero, 100},
		{model.AchievementPointCollector, 75},
		{model.AchievementCompletionChampion, 200},
	}
	if len(got) != len(want) {
		t.Fatalf("期望 4 项成就，实际=%d", len(got))
	}
	for i, w := range want {
		if got[i].ID != w.id {
			t.Errorf("第 %d 项期望=%s，实际=%s", i, w.id, got[i].ID)
		}
		if got[i].DisplayPoints != w.points {
			t.Errorf("%s 展示积分期望=%d，实际=%d", w.id, w.points, got[i].DisplayPoints)
		}
		if got[i].Unlocked {
			t.Errorf("%s 初始不应解锁", w.id)
		}
	}
}

func TestEvaluateAchievements_PointCollectorThreshold(t *testing.T) {
	steps := BuildCatalog(false)

	steps = Toggle(steps, model.StepApplication) // 100
	if unlocked(EvaluateAchievements(Aggregate(steps)), model.AchievementPointCollector) {
		t.Error("100 分时 point-collector 不应解锁")
	}

	steps = Toggle(steps, model.StepFAFSA) // 175
	if unlocked(EvaluateAchievements(Aggregate(steps)), model.AchievementPointCollector) {
		t.Error("175 分时 point-collector 不应解锁")
	}

	steps = Toggle(steps, model.StepHousing) // 225
	if !unlocked(EvaluateAchievements(Aggregate(steps)), model.AchievementPointCollector) {
		t.Error("225 分时 point-collector 应解锁")
	}
}

func TestEvaluateAchievements_StepThresholds(t *testing.T) {
	tests := []struct {
		completed int
		started   bool
		halfway   bool
		champion  bool
	}{
		{0, false, false, false},
		{1, true, false, false},
		{2, true, true, false},
		{3, true, true, true},
	}
	for _, tt := range tests {
		// 积分固定为 0，验证 champion 与积分无关
		got := EvaluateAchievements(model.Progress{TotalSteps: 3, CompletedSteps: tt.completed})
		if unlocked(got, model.AchievementGettingStarted) != tt.started {
			t.Errorf("completed=%d getting-started 期望=%v", tt.completed, tt.started)
		}
		if unlocked(got, model.AchievementHalfwayHero) != tt.halfway {
			t.Errorf("completed=%d halfway-hero 期望=%v", tt.completed, tt.halfway)
		}
		if unlocked(got, model.AchievementCompletionChampion) != tt.champion {
			t.Errorf("completed=%d completion-champion 期望=%v", tt.completed, tt.champion)
		}
	}
}

func TestEvaluateAchievements_ChampionIgnoresPoints(t *testing.T) {
	got := EvaluateAchievements(model.Progress{TotalSteps: 3, CompletedSteps: 2, TotalPoints: 10000})
	if unlocked(got, model.AchievementCompletionChampion) {
		t.Error("completion-champion 只看 CompletedSteps，不应因积分解锁")
	}
}

func TestEvaluateAchievements_Relock(t *testing.T) {
	steps := Toggle(BuildCatalog(false), model.StepApplication)
	if !unlocked(EvaluateAchievements(Aggregate(steps)), model.AchievementGettingStarted) {
		t.Fatal("完成一步后 getting-started 应解锁")
	}
	steps = Toggle(steps, model.StepApplication)
	if unlocked(EvaluateAchievements(Aggregate(steps)), model.AchievementGettingStarted) {
		t.Error("取消完成后 getting-started 应重新锁定")
	}
}

func TestEvaluateAchievements_PointsNotAddedToTotal(t *testing.T) {
	steps := Toggle(BuildCatalog(false), model.StepApplication)
	p := Aggregate(steps)
	_ = EvaluateAchievements(p)
	if Aggregate(steps).TotalPoints != 100 {
		t.Errorf("成就积分不应计入 TotalPoints，实际=%d", Aggregate(steps).TotalPoints)
	}
}
