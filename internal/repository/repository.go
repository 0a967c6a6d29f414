package repository

import (
	"github.com/miatagirl/nhccapp/config"
	"github.com/miatagirl/nhccapp/pkg/redis"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Session SessionRepository
}

// NewRepository 按配置选择会话存储后端
// session.store=redis 时 rdb 不能为空
func NewRepository(cfg *config.SessionConfig, rdb *redis.Client) *Repository {
	var session SessionRepository
	if cfg.Store == config.SessionStoreRedis && rdb != nil {
		session = NewRedisSessionRepo(rdb, cfg.KeyPrefix, cfg.TTL)
	} else {
		session = NewMemorySessionRepo(cfg.TTL)
	}
	return &Repository{Session: session}
}
