package model

import "time"

// Session 一个浏览会话的清单快照（仅临时保存，随会话过期）
type Session struct {
	SessionID       string            `json:"session_id"`
	IsInternational bool              `json:"is_international"`
	Steps           []ApplicationStep `json:"steps"`
	Version         int64             `json:"version"` // 乐观锁版本号，每次写入 +1
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
