package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/miatagirl/nhccapp/config"
	"github.com/miatagirl/nhccapp/internal/dto"
	"github.com/miatagirl/nhccapp/internal/i18n"
	"github.com/miatagirl/nhccapp/internal/journey"
	"github.com/miatagirl/nhccapp/internal/model"
	"github.com/miatagirl/nhccapp/internal/repository"
	pkgerrors "github.com/miatagirl/nhccapp/pkg/errors"
	"github.com/miatagirl/nhccapp/pkg/metrics"
)

// ── 会话模块业务错误 ──

var (
	ErrSessionNotFound = errors.New("会话不存在或已过期")
	ErrFormIncomplete  = errors.New("表单必填项未完成")
	ErrStepUnavailable = errors.New("当前学生类型没有该步骤")
	ErrFeatureDisabled = errors.New("该功能未开放")
)

// JourneyService 申请进度业务接口
// 表单被拒绝时同时返回当前状态与错误（ErrFormIncomplete / ErrStepUnavailable），状态保持不变。
type JourneyService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest, lang i18n.Language) (*dto.SessionResponse, error)
	Get(ctx context.Context, id string, lang i18n.Language) (*dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
	SetStudentType(ctx context.Context, id string, isInternational bool, lang i18n.Language) (*dto.SessionResponse, error)
	ToggleStep(ctx context.Context, id string, stepID model.StepID, lang i18n.Language) (*dto.SessionResponse, error)
	SubmitHousing(ctx context.Context, id string, req *dto.SubmitHousingRequest, lang i18n.Language) (*dto.SessionResponse, error)
	SubmitI20(ctx context.Context, id string, req *dto.SubmitI20Request, lang i18n.Language) (*dto.SessionResponse, error)
	Achievements(ctx context.Context, id string, lang i18n.Language) ([]dto.AchievementResponse, error)
}

type journeyService struct {
	repo   *repository.Repository
	cfg    *config.Config
	locks  *keyedMutex
	logger *zap.Logger
}

// NewJourneyService 创建 JourneyService 实例
func NewJourneyService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) JourneyService {
	return &journeyService{
		repo:   repo,
		cfg:    cfg,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

// ────────────────────── Create ──────────────────────

func (s *journeyService) Create(ctx context.Context, req *dto.CreateSessionRequest, lang i18n.Language) (*dto.SessionResponse, error) {
	store := journey.NewStore(req.IsInternational)
	state := store.GetState()

	session := &model.Session{
		SessionID:       uuid.NewString(),
		IsInternational: req.IsInternational,
		Steps:           state.Steps,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("创建会话失败", zap.Error(err))
		return nil, storeUnavailable(err)
	}

	metrics.SessionsCreated.WithLabelValues(metrics.StudentType(req.IsInternational)).Inc()
	s.logger.Info("会话已创建",
		zap.String("session_id", session.SessionID),
		zap.Bool("is_international", req.IsInternational),
	)

	return s.present(session, state, lang, nil), nil
}

// ────────────────────── Get ──────────────────────

func (s *journeyService) Get(ctx context.Context, id string, lang i18n.Language) (*dto.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	state := journey.Restore(session.IsInternational, session.Steps).GetState()
	return s.present(session, state, lang, nil), nil
}

// ────────────────────── Delete ──────────────────────

func (s *journeyService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSessionNotFound
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.repo.Session.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("删除会话失败", zap.String("session_id", id), zap.Error(err))
		return storeUnavailable(err)
	}

	metrics.SessionsDeleted.Inc()
	s.logger.Info("会话已结束", zap.String("session_id", id))
	return nil
}

// ────────────────────── 事件 ──────────────────────

func (s *journeyService) SetStudentType(ctx context.Context, id string, isInternational bool, lang i18n.Language) (*dto.SessionResponse, error) {
	return s.dispatch(ctx, id, lang, journey.SetStudentType{IsInternational: isInternational})
}

func (s *journeyService) ToggleStep(ctx context.Context, id string, stepID model.StepID, lang i18n.Language) (*dto.SessionResponse, error) {
	return s.dispatch(ctx, id, lang, journey.ToggleStep{StepID: stepID})
}

func (s *journeyService) SubmitHousing(ctx context.Context, id string, req *dto.SubmitHousingRequest, lang i18n.Language) (*dto.SessionResponse, error) {
	return s.dispatch(ctx, id, lang, journey.SubmitHousing{Form: req.ToForm()})
}

func (s *journeyService) SubmitI20(ctx context.Context, id string, req *dto.SubmitI20Request, lang i18n.Language) (*dto.SessionResponse, error) {
	if !s.cfg.Feature.I20FormEnabled {
		return nil, ErrFeatureDisabled
	}
	return s.dispatch(ctx, id, lang, journey.SubmitI20{Form: req.ToForm()})
}

// dispatch 加载快照 → 派发事件 → 有变更时写回；同一会话的事件串行处理
func (s *journeyService) dispatch(ctx context.Context, id string, lang i18n.Language, ev journey.Event) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	store := journey.Restore(session.IsInternational, session.Steps)
	result := store.Dispatch(ev)
	name := journey.EventName(ev)

	metrics.JourneyEvents.WithLabelValues(name, string(result.Outcome), string(result.Reason)).Inc()

	if result.Changed() {
		session.IsInternational = result.State.Profile.IsInternational
		session.Steps = result.State.Steps
		if err := s.repo.Session.Update(ctx, session); err != nil {
			switch {
			case errors.Is(err, pkgerrors.ErrOptimisticLock):
				metrics.StoreConflicts.Inc()
				s.logger.Warn("会话并发修改冲突", zap.String("session_id", id), zap.String("event", name))
				return nil, err
			case errors.Is(err, repository.ErrNotFound):
				return nil, ErrSessionNotFound
			}
			s.logger.Error("保存会话失败", zap.String("session_id", id), zap.Error(err))
			return nil, storeUnavailable(err)
		}
		s.logger.Info("会话状态已更新",
			zap.String("session_id", id),
			zap.String("event", name),
			zap.Int("completed_steps", result.State.Profile.CompletedSteps),
			zap.Int("total_points", result.State.Profile.TotalPoints),
		)
	}

	resp := s.present(session, result.State, lang, &result)

	switch result.Reason {
	case journey.ReasonFormIncomplete:
		s.logger.Warn("表单提交被拒绝",
			zap.String("session_id", id),
			zap.String("event", name),
			zap.Strings("fields", rejectedFields(ev)),
		)
		return resp, ErrFormIncomplete
	case journey.ReasonStepUnavailable:
		s.logger.Warn("步骤不可用", zap.String("session_id", id), zap.String("event", name))
		return resp, ErrStepUnavailable
	}
	return resp, nil
}

// rejectedFields 未通过校验的字段名，仅用于日志
func rejectedFields(ev journey.Event) []string {
	switch e := ev.(type) {
	case journey.SubmitHousing:
		return journey.MissingFields(e.Form)
	case journey.SubmitI20:
		return journey.MissingFields(e.Form)
	}
	return nil
}

// ────────────────────── Achievements ──────────────────────

func (s *journeyService) Achievements(ctx context.Context, id string, lang i18n.Language) ([]dto.AchievementResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	state := journey.Restore(session.IsInternational, session.Steps).GetState()
	return toAchievementResponses(state.Achievements(), i18n.For(lang)), nil
}

// ────────────────────── 内部方法 ──────────────────────

func (s *journeyService) load(ctx context.Context, id string) (*model.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}
	session, err := s.repo.Session.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("读取会话失败", zap.String("session_id", id), zap.Error(err))
		return nil, storeUnavailable(err)
	}
	return session, nil
}

// storeUnavailable 将存储层的非业务错误包装为 ErrStoreUnavailable
func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %v", pkgerrors.ErrStoreUnavailable, err)
}

func (s *journeyService) present(session *model.Session, state journey.State, lang i18n.Language, result *journey.Result) *dto.SessionResponse {
	tr := i18n.For(lang)
	progress := state.Profile.Progress

	steps := make([]dto.StepResponse, 0, len(state.Steps))
	for _, st := range state.Steps {
		steps = append(steps, s.toStepResponse(st, tr))
	}

	studentType := tr(i18n.KeyDomesticStudent)
	if state.Profile.IsInternational {
		studentType = tr(i18n.KeyInternationalStudent)
	}

	resp := &dto.SessionResponse{
		SessionID: session.SessionID,
		Language:  string(lang),
		Version:   session.Version,
		Steps:     steps,
		Profile: dto.ProfileResponse{
			IsInternational:     state.Profile.IsInternational,
			StudentType:         studentType,
			TotalSteps:          progress.TotalSteps,
			CompletedSteps:      progress.CompletedSteps,
			TotalPoints:         progress.TotalPoints,
			ProgressPercent:     progress.Percent(),
			AllRequiredComplete: progress.AllRequiredComplete(),
		},
		Achievements: toAchievementResponses(state.Achievements(), tr),
		ExpiresAt:    session.UpdatedAt.Add(s.cfg.Session.TTL).Format(time.RFC3339),
	}

	if progress.AllRequiredComplete() {
		resp.Completion = &dto.CompletionBanner{
			Title:   tr(i18n.KeyCongratulations),
			Message: tr(i18n.KeyCompletedAllSteps),
			Welcome: tr(i18n.KeyWelcomeDeacon),
		}
	}

	if result != nil {
		resp.Outcome = string(result.Outcome)
		resp.Reason = string(result.Reason)
	}
	return resp
}

func (s *journeyService) toStepResponse(st model.ApplicationStep, tr i18n.Translator) dto.StepResponse {
	reqs := make([]string, 0, len(st.Requirements))
	for _, k := range st.Requirements {
		reqs = append(reqs, tr(k))
	}
	_, hasLink := linkURL(s.cfg.Links, st.ID)
	hasForm := st.ID == model.StepHousing || (st.ID == model.StepI20 && s.cfg.Feature.I20FormEnabled)

	return dto.StepResponse{
		ID:           string(st.ID),
		Title:        tr(st.Title),
		Description:  tr(st.Description),
		ActionLabel:  tr(st.ActionLabel),
		Completed:    st.Completed,
		Optional:     st.Optional,
		Points:       st.Points,
		Requirements: reqs,
		HasLink:      hasLink,
		HasForm:      hasForm,
	}
}

func toAchievementResponses(list []model.Achievement, tr i18n.Translator) []dto.AchievementResponse {
	out := make([]dto.AchievementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.AchievementResponse{
			ID:            string(a.ID),
			Title:         tr(a.Title),
			Description:   tr(a.Description),
			Unlocked:      a.Unlocked,
			DisplayPoints: a.DisplayPoints,
		})
	}
	return out
}
