package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/miatagirl/nhccapp/internal/dto"
	"github.com/miatagirl/nhccapp/internal/i18n"
	"github.com/miatagirl/nhccapp/internal/model"
	"github.com/miatagirl/nhccapp/internal/service"
	"github.com/miatagirl/nhccapp/pkg/response"
)

// SiteHandler 外部链接、站点信息与多语言 HTTP 处理器
type SiteHandler struct {
	siteSvc service.SiteService
}

// NewSiteHandler 创建 SiteHandler
func NewSiteHandler(siteSvc service.SiteService) *SiteHandler {
	return &SiteHandler{siteSvc: siteSvc}
}

// GetStepLink 获取步骤外部链接
// GET /api/v1/steps/:step/link
func (h *SiteHandler) GetStepLink(c *gin.Context) {
	link, err := h.siteSvc.ActionLink(model.StepID(c.Param("step")), currentLanguage(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStepNotFound):
			response.NotFound(c, 22001, err.Error())
		case errors.Is(err, service.ErrNoExternalLink):
			response.NotFound(c, 22002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, link)
}

// GetSiteInfo 获取联系方式
// GET /api/v1/site
func (h *SiteHandler) GetSiteInfo(c *gin.Context) {
	response.OK(c, h.siteSvc.SiteInfo(currentLanguage(c)))
}

// GetHousingOptions 获取住宿表单选项
// GET /api/v1/housing/options
func (h *SiteHandler) GetHousingOptions(c *gin.Context) {
	response.OK(c, h.siteSvc.HousingOptions(currentLanguage(c)))
}

// ListLanguages 获取可选语言
// GET /api/v1/i18n/languages
func (h *SiteHandler) ListLanguages(c *gin.Context) {
	current := currentLanguage(c)
	opts := i18n.Supported()
	list := make([]dto.LanguageResponse, 0, len(opts))
	for _, o := range opts {
		list = append(list, dto.LanguageResponse{
			Code:    string(o.Code),
			Name:    o.Name,
			Current: o.Code == current,
		})
	}

	response.OK(c, gin.H{"list": list})
}

// GetMessages 获取当前语言文案表
// GET /api/v1/i18n/messages?keys=cancel,submit
// 未指定 keys 时返回完整文案表；未知键原样返回键名
func (h *SiteHandler) GetMessages(c *gin.Context) {
	lang := currentLanguage(c)

	messages := i18n.Messages(lang)
	if raw := strings.TrimSpace(c.Query("keys")); raw != "" {
		messages = make(map[string]string)
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				messages[key] = i18n.Lookup(lang, key)
			}
		}
	}

	response.OK(c, dto.MessagesResponse{
		Language: string(lang),
		Messages: messages,
	})
}
