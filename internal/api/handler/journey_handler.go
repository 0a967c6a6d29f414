package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/miatagirl/nhccapp/internal/dto"
	"github.com/miatagirl/nhccapp/internal/model"
	"github.com/miatagirl/nhccapp/internal/service"
	pkgerrors "github.com/miatagirl/nhccapp/pkg/errors"
	"github.com/miatagirl/nhccapp/pkg/response"
)

// JourneyHandler 申请进度模块 HTTP 处理器
type JourneyHandler struct {
	journeySvc service.JourneyService
}

// NewJourneyHandler 创建 JourneyHandler
func NewJourneyHandler(journeySvc service.JourneyService) *JourneyHandler {
	return &JourneyHandler{journeySvc: journeySvc}
}

// CreateSession 创建会话
// POST /api/v1/sessions
func (h *JourneyHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.journeySvc.Create(c.Request.Context(), &req, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, resp, err)
		return
	}

	response.Created(c, resp)
}

// GetSession 获取会话当前状态
// GET /api/v1/sessions/:id
func (h *JourneyHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	resp, err := h.journeySvc.Get(c.Request.Context(), id, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, resp, err)
		return
	}

	response.OK(c, resp)
}

// DeleteSession 结束会话
// DELETE /api/v1/sessions/:id
func (h *JourneyHandler) DeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.journeySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleJourneyError(c, nil, err)
		return
	}

	response.OK(c, nil)
}

// SetStudentType 切换学生类型（重建清单，清空进度）
// PUT /api/v1/sessions/:id/student-type
func (h *JourneyHandler) SetStudentType(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SetStudentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.journeySvc.SetStudentType(c.Request.Context(), id, *req.IsInternational, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, resp, err)
		return
	}

	response.OK(c, resp)
}

// ToggleStep 切换步骤完成状态
// POST /api/v1/sessions/:id/steps/:step/toggle
func (h *JourneyHandler) ToggleStep(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	// 未知步骤不报错，按原状态返回（outcome=unchanged）
	stepID := model.StepID(c.Param("step"))

	resp, err := h.journeySvc.ToggleStep(c.Request.Context(), id, stepID, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, resp, err)
		return
	}

	response.OK(c, resp)
}

// SubmitHousing 提交住宿偏好
// POST /api/v1/sessions/:id/housing
func (h *JourneyHandler) SubmitHousing(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SubmitHousingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.journeySvc.SubmitHousing(c.Request.Context(), id, &req, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, resp, err)
		return
	}

	response.OK(c, resp)
}

// SubmitI20 提交 I-20 申请
// POST /api/v1/sessions/:id/i20
func (h *JourneyHandler) SubmitI20(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SubmitI20Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.journeySvc.SubmitI20(c.Request.Context(), id, &req, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, resp, err)
		return
	}

	response.OK(c, resp)
}

// GetAchievements 获取成就列表
// GET /api/v1/sessions/:id/achievements
func (h *JourneyHandler) GetAchievements(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	list, err := h.journeySvc.Achievements(c.Request.Context(), id, currentLanguage(c))
	if err != nil {
		h.handleJourneyError(c, nil, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ── 内部方法 ──

func sessionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "会话ID不能为空")
		return "", false
	}
	return id, true
}

// handleJourneyError 将 Service 层错误映射为 HTTP 响应
func (h *JourneyHandler) handleJourneyError(c *gin.Context, state *dto.SessionResponse, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, service.ErrFormIncomplete):
		response.UnprocessableEntity(c, 21001, err.Error(), state)
	case errors.Is(err, service.ErrStepUnavailable):
		response.UnprocessableEntity(c, 21002, err.Error(), state)
	case errors.Is(err, service.ErrFeatureDisabled):
		response.Forbidden(c, 21003, err.Error())
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 10006, err.Error())
	case errors.Is(err, pkgerrors.ErrStoreUnavailable):
		response.ServiceUnavailable(c, 10007, pkgerrors.ErrStoreUnavailable.Error())
	default:
		response.InternalError(c)
	}
}
