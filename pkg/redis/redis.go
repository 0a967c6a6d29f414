package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/miatagirl/nhccapp/config"
	pkgerrors "github.com/miatagirl/nhccapp/pkg/errors"
)

// ErrKeyNotFound 快照不存在或已过期
var ErrKeyNotFound = errors.New("redis: 键不存在")

// Client Redis 客户端封装
// 用于会话快照存储与写接口限流
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// Wrap 使用已有的 go-redis 客户端（测试中配合 miniredis 使用）
func Wrap(rdb *goredis.Client, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// Ping 健康检查
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// ── 版本化快照 ──
// 快照以 Hash 保存：data 为序列化内容，version 为乐观锁版本号

const (
	fieldData    = "data"
	fieldVersion = "version"
)

// LoadSnapshot 读取快照内容与版本号
func (c *Client) LoadSnapshot(ctx context.Context, key string) ([]byte, int64, error) {
	vals, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, 0, err
	}
	data, ok := vals[fieldData]
	if !ok {
		return nil, 0, ErrKeyNotFound
	}
	version, err := strconv.ParseInt(vals[fieldVersion], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("快照版本号损坏 %q: %w", key, err)
	}
	return []byte(data), version, nil
}

// SaveSnapshot 以乐观锁方式写入快照：
// 当前版本必须等于 expected（expected=0 表示键不存在），写入后版本号为 expected+1，并刷新 TTL。
// 版本不一致或 WATCH 期间被并发修改时返回 ErrOptimisticLock。
func (c *Client) SaveSnapshot(ctx context.Context, key string, expected int64, data []byte, ttl time.Duration) (int64, error) {
	next := expected + 1

	txf := func(tx *goredis.Tx) error {
		current, err := tx.HGet(ctx, key, fieldVersion).Int64()
		if errors.Is(err, goredis.Nil) {
			current = 0
		} else if err != nil {
			return err
		}
		if current != expected {
			return pkgerrors.ErrOptimisticLock
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldData, data, fieldVersion, next)
			pipe.Expire(ctx, key, ttl)
			return nil
		})
		return err
	}

	if err := c.rdb.Watch(ctx, txf, key); err != nil {
		if errors.Is(err, goredis.TxFailedErr) {
			return 0, pkgerrors.ErrOptimisticLock
		}
		return 0, err
	}
	return next, nil
}

// DeleteSnapshot 删除快照，返回键是否存在
func (c *Client) DeleteSnapshot(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 限流 ──

// CheckRateLimit 基于有序集合的滑动窗口限流。
// 清理过期记录、写入本次请求与计数在同一个 MULTI 中完成；
// 计数超过 limit 时撤回本次记录并拒绝。
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-window).UnixMilli()
	member := uuid.NewString()

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, goredis.Z{
		Score:  float64(now.UnixMilli()),
		Member: member,
	})
	card := pipe.ZCard(ctx, key)
	pipe.PExpire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if card.Val() <= int64(limit) {
		return true, nil
	}
	if err := c.rdb.ZRem(ctx, key, member).Err(); err != nil {
		return false, err
	}
	return false, nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
