package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/miatagirl/nhccapp/internal/api/middleware"
	"github.com/miatagirl/nhccapp/internal/i18n"
)

// currentLanguage 从 Gin 上下文中提取 Language 中间件解析出的语言。
// 中间件未注册时回退默认语言。
func currentLanguage(c *gin.Context) i18n.Language {
	v, exists := c.Get(middleware.ContextKeyLanguage)
	if !exists {
		return i18n.DefaultLanguage
	}
	lang, ok := v.(i18n.Language)
	if !ok || lang == "" {
		return i18n.DefaultLanguage
	}
	return lang
}
