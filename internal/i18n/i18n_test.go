package i18n

import "testing"

// 所有语言必须覆盖全部文案键，缺失翻译在测试阶段即暴露
func TestTables_Complete(t *testing.T) {
	for lang, table := range tables {
		if len(table) != len(allKeys) {
			t.Errorf("语言 %s 文案数量=%d，期望=%d", lang, len(table), len(allKeys))
		}
		for _, key := range allKeys {
			v, ok := table[key]
			if !ok {
				t.Errorf("语言 %s 缺少文案键 %s", lang, key)
				continue
			}
			if v == "" {
				t.Errorf("语言 %s 文案键 %s 为空", lang, key)
			}
		}
	}
}

func TestAllKeys_Unique(t *testing.T) {
	seen := make(map[Key]bool, len(allKeys))
	for _, key := range allKeys {
		if seen[key] {
			t.Errorf("文案键重复: %s", key)
		}
		seen[key] = true
	}
}

func TestSupported_MatchesTables(t *testing.T) {
	opts := Supported()
	if len(opts) != len(tables) {
		t.Fatalf("期望 %d 种语言，实际=%d", len(tables), len(opts))
	}
	if opts[0].Code != DefaultLanguage {
		t.Errorf("首项应为默认语言 %s，实际=%s", DefaultLanguage, opts[0].Code)
	}
	for _, o := range opts {
		if _, ok := tables[o.Code]; !ok {
			t.Errorf("语言 %s 没有文案表", o.Code)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		lang Language
		key  Key
		want string
	}{
		{LanguageEnglish, KeyHalfwayHero, "Halfway Hero"},
		{LanguageJapanese, KeyCancel, "キャンセル"},
		{LanguagePortuguese, KeyCancel, "Cancelar"},
		{LanguageFilipino, KeyCancel, "Kanselahin"},
		{LanguageEnglish, Key("of"), "of"},
		{Language("de"), KeyCancel, "cancel"},
	}
	for _, tt := range tests {
		if got := Translate(tt.lang, tt.key); got != tt.want {
			t.Errorf("Translate(%s, %s)=%q，期望=%q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestLookup_UnknownKeyFallsBackToKey(t *testing.T) {
	if got := Lookup(LanguageJapanese, "doesNotExist"); got != "doesNotExist" {
		t.Errorf("期望返回键本身，实际=%q", got)
	}
}

func TestFor(t *testing.T) {
	tr := For(LanguagePortuguese)
	if got := tr(KeyOptional); got != ptMessages[KeyOptional] {
		t.Errorf("期望=%q，实际=%q", ptMessages[KeyOptional], got)
	}
}

func TestParse(t *testing.T) {
	if lang, ok := Parse(" JA "); !ok || lang != LanguageJapanese {
		t.Errorf("期望解析为 ja，实际=%s ok=%v", lang, ok)
	}
	if _, ok := Parse("pt-BR"); ok {
		t.Error("Parse 只接受精确代码")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   Language
	}{
		{"全部为空", "", "", "", LanguageEnglish},
		{"查询参数优先", "ja", "pt", "fil", LanguageJapanese},
		{"Cookie 次之", "", "fil", "ja", LanguageFilipino},
		{"地区化查询参数", "pt-BR", "", "", LanguagePortuguese},
		{"Accept-Language", "", "", "pt-BR,pt;q=0.9,en;q=0.8", LanguagePortuguese},
		{"Accept-Language 日语", "", "", "ja-JP", LanguageJapanese},
		{"无效查询参数回退到 Cookie", "zz-!!", "ja", "", LanguageJapanese},
		{"不支持的语言回退默认", "", "", "de-DE", LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.query, tt.cookie, tt.accept); got != tt.want {
				t.Errorf("Resolve=%s，期望=%s", got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	msgs := Messages(LanguageJapanese)
	if len(msgs) != len(allKeys) {
		t.Fatalf("期望 %d 条文案，实际=%d", len(allKeys), len(msgs))
	}
	if msgs["cancel"] != "キャンセル" {
		t.Errorf("期望 cancel=キャンセル，实际=%q", msgs["cancel"])
	}
}
