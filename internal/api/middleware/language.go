package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miatagirl/nhccapp/internal/i18n"
)

const (
	// ContextKeyLanguage 解析后的语言在 gin.Context 中的键
	ContextKeyLanguage = "lang"
	// LanguageCookie 记住用户语言选择的 Cookie
	LanguageCookie = "nhcc_lang"

	languageCookieMaxAge = 365 * 24 * 60 * 60
)

// Language 语言协商中间件
// 优先级：?lang= 查询参数 > nhcc_lang Cookie > Accept-Language > 默认英语。
// 通过查询参数显式选择的语言会写入 Cookie，后续请求沿用。
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("lang")
		cookie, _ := c.Cookie(LanguageCookie)

		lang := i18n.Resolve(query, cookie, c.GetHeader("Accept-Language"))

		if query != "" && string(lang) != cookie {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     LanguageCookie,
				Value:    string(lang),
				Path:     "/",
				MaxAge:   languageCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(ContextKeyLanguage, lang)
		c.Header("Content-Language", string(lang))

		c.Next()
	}
}
