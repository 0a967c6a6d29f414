package service

import (
	"context"

	"github.com/miatagirl/nhccapp/internal/model"
	"github.com/miatagirl/nhccapp/internal/repository"
)

// ── Mock SessionRepository ──

// mockSessionRepo 包装内存实现，可按需注入错误
type mockSessionRepo struct {
	inner     repository.SessionRepository
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	updates   int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{inner: repository.NewMemorySessionRepo(testTTL)}
}

func (m *mockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	return m.inner.Create(ctx, s)
}

func (m *mockSessionRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.inner.Get(ctx, id)
}

func (m *mockSessionRepo) Update(ctx context.Context, s *model.Session) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates++
	return m.inner.Update(ctx, s)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	return m.inner.Delete(ctx, id)
}
