package model

// Progress 由步骤列表推导出的聚合值
type Progress struct {
	TotalSteps     int `json:"total_steps"`     // 必做步骤数（不含可选步骤）
	CompletedSteps int `json:"completed_steps"` // 已完成的必做步骤数
	TotalPoints    int `json:"total_points"`    // 全部已完成步骤的积分（含可选步骤）
}

// StudentProfile 学生档案（派生值，不可单独修改）
type StudentProfile struct {
	IsInternational bool `json:"is_international"`
	Progress
}

// AllRequiredComplete 必做步骤是否全部完成
func (p Progress) AllRequiredComplete() bool {
	return p.TotalSteps > 0 && p.CompletedSteps == p.TotalSteps
}

// Percent 必做步骤完成百分比（四舍五入）
func (p Progress) Percent() int {
	if p.TotalSteps <= 0 {
		return 0
	}
	return (p.CompletedSteps*100 + p.TotalSteps/2) / p.TotalSteps
}
