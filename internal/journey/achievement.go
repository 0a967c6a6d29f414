package journey

import (
	"github.com/miatagirl/nhccapp/internal/i18n"
	"github.com/miatagirl/nhccapp/internal/model"
)

// ChampionThreshold 完成冠军所需的必做步骤数。
// 固定为 3（国内学生必做步骤数），不随 TotalSteps 变化。
const ChampionThreshold = 3

type achievementRule struct {
	id          model.AchievementID
	title       i18n.Key
	description i18n.Key
	points      int
	unlocked    func(model.Progress) bool
}

var achievementRules = []achievementRule{
	{
		id:          model.AchievementGettingStarted,
		title:       i18n.KeyGettingStarted,
		description: i18n.KeyGettingStartedDesc,
		points:      50,
		unlocked:    func(p model.Progress) bool { return p.CompletedSteps >= 1 },
	},
	{
		id:          model.AchievementHalfwayHero,
		title:       i18n.KeyHalfwayHero,
		description: i18n.KeyHalfwayHeroDesc,
		points:      100,
		unlocked:    func(p model.Progress) bool { return p.CompletedSteps >= 2 },
	},
	{
		id:          model.AchievementPointCollector,
		title:       i18n.KeyPointCollector,
		description: i18n.KeyPointCollectorDesc,
		points:      75,
		unlocked:    func(p model.Progress) bool { return p.TotalPoints >= 200 },
	},
	{
		id:          model.AchievementCompletionChampion,
		title:       i18n.KeyCompletionChampion,
		description: i18n.KeyCompletionChampionDesc,
		points:      200,
		unlocked:    func(p model.Progress) bool { return p.CompletedSteps >= ChampionThreshold },
	},
}

// EvaluateAchievements 按当前聚合值判定成就，固定返回 4 项且顺序不变。
// 解锁状态不持久：取消完成某步骤后，对应成就会重新锁定。
func EvaluateAchievements(p model.Progress) []model.Achievement {
	out := make([]model.Achievement, 0, len(achievementRules))
	for _, r := range achievementRules {
		out = append(out, model.Achievement{
			ID:            r.id,
			Title:         r.title,
			Description:   r.description,
			Unlocked:      r.unlocked(p),
			DisplayPoints: r.points,
		})
	}
	return out
}
