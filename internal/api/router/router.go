package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/miatagirl/nhccapp/config"
	"github.com/miatagirl/nhccapp/internal/api/handler"
	"github.com/miatagirl/nhccapp/internal/api/middleware"
	"github.com/miatagirl/nhccapp/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil（内存会话存储且未启用限流）
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "session_store": cfg.Session.Store}
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx); err != nil {
				status["status"] = "degraded"
				status["redis"] = "unavailable"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["redis"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 写接口限流（Redis 不可用时不启用）
	var writeLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled && rdb != nil {
		writeLimit = middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Language())
	{
		// 会话模块
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", writeLimit, h.Journey.CreateSession)
			sessions.GET("/:id", h.Journey.GetSession)
			sessions.DELETE("/:id", h.Journey.DeleteSession)
			sessions.PUT("/:id/student-type", writeLimit, h.Journey.SetStudentType)
			sessions.POST("/:id/steps/:step/toggle", writeLimit, h.Journey.ToggleStep)
			sessions.POST("/:id/housing", writeLimit, h.Journey.SubmitHousing)
			sessions.POST("/:id/i20", writeLimit, h.Journey.SubmitI20)
			sessions.GET("/:id/achievements", h.Journey.GetAchievements)
		}

		// 外部链接与站点信息
		v1.GET("/steps/:step/link", h.Site.GetStepLink)
		v1.GET("/site", h.Site.GetSiteInfo)
		v1.GET("/housing/options", h.Site.GetHousingOptions)

		// 多语言
		i18nGroup := v1.Group("/i18n")
		{
			i18nGroup.GET("/languages", h.Site.ListLanguages)
			i18nGroup.GET("/messages", h.Site.GetMessages)
		}
	}

	return r
}
