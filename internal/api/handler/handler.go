package handler

import "github.com/miatagirl/nhccapp/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Journey *JourneyHandler
	Site    *SiteHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Journey: NewJourneyHandler(svc.Journey),
		Site:    NewSiteHandler(svc.Site),
	}
}
