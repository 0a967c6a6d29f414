package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/miatagirl/nhccapp/internal/model"
	pkgerrors "github.com/miatagirl/nhccapp/pkg/errors"
)

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("记录不存在")

// SessionRepository 会话快照数据访问接口
// Update 采用乐观锁：传入的 Version 必须与存储中一致，成功后 Version+1
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
}

// ── 内存实现 ──

type memoryEntry struct {
	session   model.Session
	expiresAt time.Time
}

type memorySessionRepo struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemorySessionRepo 创建进程内会话存储（单实例部署使用）
func NewMemorySessionRepo(ttl time.Duration) SessionRepository {
	return &memorySessionRepo{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (r *memorySessionRepo) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.purgeExpiredLocked(now)

	if e, ok := r.entries[session.SessionID]; ok && now.Before(e.expiresAt) {
		return pkgerrors.ErrOptimisticLock
	}

	session.Version = 1
	session.CreatedAt = now
	session.UpdatedAt = now
	r.entries[session.SessionID] = memoryEntry{
		session:   copySession(session),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func (r *memorySessionRepo) Get(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || !r.now().Before(e.expiresAt) {
		delete(r.entries, id)
		return nil, ErrNotFound
	}
	s := copySession(&e.session)
	return &s, nil
}

func (r *memorySessionRepo) Update(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.entries[session.SessionID]
	if !ok || !now.Before(e.expiresAt) {
		delete(r.entries, session.SessionID)
		return ErrNotFound
	}
	if e.session.Version != session.Version {
		return pkgerrors.ErrOptimisticLock
	}

	session.Version++
	session.CreatedAt = e.session.CreatedAt
	session.UpdatedAt = now
	r.entries[session.SessionID] = memoryEntry{
		session:   copySession(session),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func (r *memorySessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	delete(r.entries, id)
	if !ok || !r.now().Before(e.expiresAt) {
		return ErrNotFound
	}
	return nil
}

// purgeExpiredLocked 清理过期会话，调用方需持有锁
func (r *memorySessionRepo) purgeExpiredLocked(now time.Time) {
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
		}
	}
}

func copySession(s *model.Session) model.Session {
	out := *s
	out.Steps = model.CloneSteps(s.Steps)
	return out
}
