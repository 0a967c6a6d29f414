package model

import "github.com/miatagirl/nhccapp/internal/i18n"

// AchievementID 成就标识
type AchievementID string

const (
	AchievementGettingStarted     AchievementID = "getting-started"
	AchievementHalfwayHero        AchievementID = "halfway-hero"
	AchievementPointCollector     AchievementID = "point-collector"
	AchievementCompletionChampion AchievementID = "completion-champion"
)

// Achievement 成就徽章（每次按聚合值重新推导，不落库）
// DisplayPoints 仅用于展示，不计入 TotalPoints
type Achievement struct {
	ID            AchievementID `json:"id"`
	Title         i18n.Key      `json:"title"`
	Description   i18n.Key      `json:"description"`
	Unlocked      bool          `json:"unlocked"`
	DisplayPoints int           `json:"display_points"`
}
