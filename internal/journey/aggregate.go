package journey

import "github.com/miatagirl/nhccapp/internal/model"

// Aggregate 从步骤列表重新计算进度聚合值。
// 每次调用都从头计算，不依赖任何缓存。
func Aggregate(steps []model.ApplicationStep) model.Progress {
	var p model.Progress
	for _, s := range steps {
		if !s.Optional {
			p.TotalSteps++
			if s.Completed {
				p.CompletedSteps++
			}
		}
		if s.Completed {
			p.TotalPoints += s.Points
		}
	}
	return p
}

// Profile 推导学生档案
func Profile(isInternational bool, steps []model.ApplicationStep) model.StudentProfile {
	return model.StudentProfile{
		IsInternational: isInternational,
		Progress:        Aggregate(steps),
	}
}
