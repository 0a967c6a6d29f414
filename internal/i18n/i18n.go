package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language 界面语言代码
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageJapanese   Language = "ja"
	LanguagePortuguese Language = "pt"
	LanguageFilipino   Language = "fil"
)

// DefaultLanguage 未指定或无法识别时使用的语言
const DefaultLanguage = LanguageEnglish

// supported 顺序即语言选择器展示顺序，首项为匹配器默认值
var supported = []struct {
	lang Language
	tag  language.Tag
	name string
}{
	{LanguageEnglish, language.English, "English"},
	{LanguageJapanese, language.Japanese, "日本語"},
	{LanguagePortuguese, language.Portuguese, "Português"},
	{LanguageFilipino, language.Filipino, "Filipino"},
}

var tables = map[Language]map[Key]string{
	LanguageEnglish:    enMessages,
	LanguageJapanese:   jaMessages,
	LanguagePortuguese: ptMessages,
	LanguageFilipino:   filMessages,
}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, s.tag)
	}
	return language.NewMatcher(tags)
}

// Option 语言选择器中的一项
type Option struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
}

// Supported 返回支持的语言列表
func Supported() []Option {
	out := make([]Option, 0, len(supported))
	for _, s := range supported {
		out = append(out, Option{Code: s.lang, Name: s.name})
	}
	return out
}

// Parse 精确解析语言代码（大小写不敏感）
func Parse(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	_, ok := tables[lang]
	return lang, ok
}

// Resolve 按优先级确定语言：查询参数 > Cookie > Accept-Language > 默认语言。
// 每个来源都可以是地区化标签（如 pt-BR）或完整的 Accept-Language 头。
func Resolve(query, cookie, acceptLanguage string) Language {
	for _, candidate := range []string{query, cookie} {
		if lang, ok := Parse(candidate); ok {
			return lang
		}
	}

	sources := make([]string, 0, 3)
	for _, s := range []string{query, cookie, acceptLanguage} {
		if strings.TrimSpace(s) != "" {
			sources = append(sources, s)
		}
	}
	if len(sources) == 0 {
		return DefaultLanguage
	}

	_, idx := language.MatchStrings(matcher, sources...)
	if idx < 0 || idx >= len(supported) {
		return DefaultLanguage
	}
	return supported[idx].lang
}

// Translate 查找文案；当前语言缺少该键时返回键本身
func Translate(lang Language, key Key) string {
	if table, ok := tables[lang]; ok {
		if v, ok := table[key]; ok && v != "" {
			return v
		}
	}
	return string(key)
}

// Lookup 以字符串键查找文案，供动态键（如前端透传的键名）使用
func Lookup(lang Language, key string) string {
	return Translate(lang, Key(key))
}

// Translator 绑定语言的文案查找函数
type Translator func(key Key) string

// For 返回绑定到指定语言的 Translator
func For(lang Language) Translator {
	return func(key Key) string {
		return Translate(lang, key)
	}
}

// Messages 返回指定语言的完整文案表（以字符串为键，供前端一次性拉取）
func Messages(lang Language) map[string]string {
	out := make(map[string]string, len(allKeys))
	for _, key := range allKeys {
		out[string(key)] = Translate(lang, key)
	}
	return out
}

// Keys 返回全部已知文案键的副本
func Keys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}
