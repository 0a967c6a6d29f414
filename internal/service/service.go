package service

import (
	"go.uber.org/zap"

	"github.com/miatagirl/nhccapp/config"
	"github.com/miatagirl/nhccapp/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Journey JourneyService
	Site    SiteService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Journey: NewJourneyService(cfg, repo, logger),
		Site:    NewSiteService(cfg.Links),
	}
}
