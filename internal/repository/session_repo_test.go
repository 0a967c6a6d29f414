package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/miatagirl/nhccapp/config"
	"github.com/miatagirl/nhccapp/internal/journey"
	"github.com/miatagirl/nhccapp/internal/model"
	pkgerrors "github.com/miatagirl/nhccapp/pkg/errors"
	"github.com/miatagirl/nhccapp/pkg/redis"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

func newRedisRepo(t *testing.T, ttl time.Duration) (SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisSessionRepo(redis.Wrap(rdb, zap.NewNop()), "test:session:", ttl), mr
}

func newSession(id string, international bool) *model.Session {
	return &model.Session{
		SessionID:       id,
		IsInternational: international,
		Steps:           journey.BuildCatalog(international),
	}
}

// 两种实现共用同一组行为约束
func forEachRepo(t *testing.T, fn func(t *testing.T, repo SessionRepository)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemorySessionRepo(time.Hour))
	})
	t.Run("redis", func(t *testing.T) {
		repo, _ := newRedisRepo(t, time.Hour)
		fn(t, repo)
	})
}

// ═══════════════════════════════════════════════════════════
// Contract Tests
// ═══════════════════════════════════════════════════════════

func TestSessionRepo_CreateAndGet(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo SessionRepository) {
		ctx := context.Background()
		s := newSession("abc", true)
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create 失败: %v", err)
		}
		if s.Version != 1 {
			t.Errorf("创建后版本应为 1，实际=%d", s.Version)
		}

		got, err := repo.Get(ctx, "abc")
		if err != nil {
			t.Fatalf("Get 失败: %v", err)
		}
		if !got.IsInternational || len(got.Steps) != 4 || got.Version != 1 {
			t.Errorf("读取内容错误: %+v", got)
		}
		if got.CreatedAt.IsZero() {
			t.Error("CreatedAt 未设置")
		}
	})
}

func TestSessionRepo_GetMissing(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo SessionRepository) {
		if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("期望 ErrNotFound，实际=%v", err)
		}
	})
}

func TestSessionRepo_UpdateVersioning(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo SessionRepository) {
		ctx := context.Background()
		s := newSession("v", false)
		if err := repo.Create(ctx, s); err != nil {
			t.Fatal(err)
		}

		first, _ := repo.Get(ctx, "v")
		second, _ := repo.Get(ctx, "v")

		first.Steps = journey.Toggle(first.Steps, model.StepFAFSA)
		if err := repo.Update(ctx, first); err != nil {
			t.Fatalf("Update 失败: %v", err)
		}
		if first.Version != 2 {
			t.Errorf("更新后版本应为 2，实际=%d", first.Version)
		}

		// 基于旧版本的写入应冲突
		second.Steps = journey.Toggle(second.Steps, model.StepHousing)
		if err := repo.Update(ctx, second); !errors.Is(err, pkgerrors.ErrOptimisticLock) {
			t.Errorf("期望 ErrOptimisticLock，实际=%v", err)
		}

		got, _ := repo.Get(ctx, "v")
		fafsa, _ := model.FindStep(got.Steps, model.StepFAFSA)
		housing, _ := model.FindStep(got.Steps, model.StepHousing)
		if !fafsa.Completed || housing.Completed {
			t.Errorf("冲突写入不应生效: fafsa=%v housing=%v", fafsa.Completed, housing.Completed)
		}
	})
}

func TestSessionRepo_UpdateMissing(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo SessionRepository) {
		s := newSession("ghost", false)
		s.Version = 1
		if err := repo.Update(context.Background(), s); !errors.Is(err, ErrNotFound) {
			t.Errorf("期望 ErrNotFound，实际=%v", err)
		}
	})
}

func TestSessionRepo_Delete(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo SessionRepository) {
		ctx := context.Background()
		if err := repo.Create(ctx, newSession("d", false)); err != nil {
			t.Fatal(err)
		}
		if err := repo.Delete(ctx, "d"); err != nil {
			t.Fatalf("Delete 失败: %v", err)
		}
		if _, err := repo.Get(ctx, "d"); !errors.Is(err, ErrNotFound) {
			t.Errorf("删除后应不存在，实际=%v", err)
		}
		if err := repo.Delete(ctx, "d"); !errors.Is(err, ErrNotFound) {
			t.Errorf("重复删除期望 ErrNotFound，实际=%v", err)
		}
	})
}

func TestSessionRepo_ReturnsCopies(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo SessionRepository) {
		ctx := context.Background()
		if err := repo.Create(ctx, newSession("c", false)); err != nil {
			t.Fatal(err)
		}
		got, _ := repo.Get(ctx, "c")
		got.Steps[0].Completed = true

		again, _ := repo.Get(ctx, "c")
		if again.Steps[0].Completed {
			t.Error("修改读取结果不应影响存储")
		}
	})
}

// ═══════════════════════════════════════════════════════════
// Expiry
// ═══════════════════════════════════════════════════════════

func TestMemorySessionRepo_Expiry(t *testing.T) {
	repo := NewMemorySessionRepo(time.Minute).(*memorySessionRepo)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	ctx := context.Background()
	if err := repo.Create(ctx, newSession("e", false)); err != nil {
		t.Fatal(err)
	}

	now = now.Add(30 * time.Second)
	if _, err := repo.Get(ctx, "e"); err != nil {
		t.Fatalf("未过期应可读取: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := repo.Get(ctx, "e"); !errors.Is(err, ErrNotFound) {
		t.Errorf("过期后期望 ErrNotFound，实际=%v", err)
	}
}

func TestMemorySessionRepo_UpdateRefreshesTTL(t *testing.T) {
	repo := NewMemorySessionRepo(time.Minute).(*memorySessionRepo)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	ctx := context.Background()
	s := newSession("r", false)
	if err := repo.Create(ctx, s); err != nil {
		t.Fatal(err)
	}

	now = now.Add(50 * time.Second)
	if err := repo.Update(ctx, s); err != nil {
		t.Fatal(err)
	}

	now = now.Add(50 * time.Second)
	if _, err := repo.Get(ctx, "r"); err != nil {
		t.Errorf("更新后 TTL 应刷新: %v", err)
	}
}

func TestRedisSessionRepo_Expiry(t *testing.T) {
	repo, mr := newRedisRepo(t, time.Minute)
	ctx := context.Background()

	if err := repo.Create(ctx, newSession("e", true)); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("test:session:e") {
		t.Fatal("快照应写入带前缀的键")
	}

	mr.FastForward(2 * time.Minute)
	if _, err := repo.Get(ctx, "e"); !errors.Is(err, ErrNotFound) {
		t.Errorf("过期后期望 ErrNotFound，实际=%v", err)
	}
}

func TestNewRepository_SelectsBackend(t *testing.T) {
	cfg := &config.SessionConfig{Store: config.SessionStoreMemory, TTL: time.Hour}
	if _, ok := NewRepository(cfg, nil).Session.(*memorySessionRepo); !ok {
		t.Error("memory 配置应使用内存实现")
	}

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	cfg = &config.SessionConfig{Store: config.SessionStoreRedis, TTL: time.Hour, KeyPrefix: "p:"}
	if _, ok := NewRepository(cfg, redis.Wrap(rdb, zap.NewNop())).Session.(*redisSessionRepo); !ok {
		t.Error("redis 配置应使用 Redis 实现")
	}
}
