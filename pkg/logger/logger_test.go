package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/miatagirl/nhccapp/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		level   zapcore.Level
		wantErr bool
	}{
		{"json info", config.LogConfig{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"console debug", config.LogConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"未配置级别", config.LogConfig{Format: "json"}, zapcore.InfoLevel, false},
		{"非法级别", config.LogConfig{Level: "loud", Format: "json"}, zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger 失败: %v", err)
			}
			if !l.Core().Enabled(tt.level) {
				t.Errorf("级别 %s 应启用", tt.level)
			}
			if tt.level > zapcore.DebugLevel && l.Core().Enabled(zapcore.DebugLevel) {
				t.Error("debug 级别不应启用")
			}
		})
	}
}
