package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/miatagirl/nhccapp/internal/model"
	"github.com/miatagirl/nhccapp/pkg/redis"
)

type redisSessionRepo struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisSessionRepo 创建基于 Redis 的会话存储（多实例部署使用）
func NewRedisSessionRepo(rdb *redis.Client, prefix string, ttl time.Duration) SessionRepository {
	return &redisSessionRepo{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (r *redisSessionRepo) key(id string) string {
	return r.prefix + id
}

func (r *redisSessionRepo) Create(ctx context.Context, session *model.Session) error {
	now := r.now()
	session.CreatedAt = now
	session.UpdatedAt = now
	return r.save(ctx, session, 0)
}

func (r *redisSessionRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	data, version, err := r.rdb.LoadSnapshot(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("解析会话快照失败: %w", err)
	}
	session.Version = version
	return &session, nil
}

func (r *redisSessionRepo) Update(ctx context.Context, session *model.Session) error {
	// 已过期的会话不允许通过更新重新创建
	if _, _, err := r.rdb.LoadSnapshot(ctx, r.key(session.SessionID)); err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return ErrNotFound
		}
		return err
	}
	session.UpdatedAt = r.now()
	return r.save(ctx, session, session.Version)
}

func (r *redisSessionRepo) Delete(ctx context.Context, id string) error {
	existed, err := r.rdb.DeleteSnapshot(ctx, r.key(id))
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

func (r *redisSessionRepo) save(ctx context.Context, session *model.Session, expected int64) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("序列化会话快照失败: %w", err)
	}
	version, err := r.rdb.SaveSnapshot(ctx, r.key(session.SessionID), expected, data, r.ttl)
	if err != nil {
		return err
	}
	session.Version = version
	return nil
}
