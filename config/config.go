package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 会话存储后端
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Links     LinksConfig     `mapstructure:"links"`
	Log       LogConfig       `mapstructure:"log"`
	Feature   FeatureConfig   `mapstructure:"feature"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	BaseURL        string     `mapstructure:"base_url"`
	BodyLimitBytes int64      `mapstructure:"body_limit_bytes"`
	CORS           CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RedisConfig Redis 配置（会话存储为 redis 或启用限流时使用）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig 会话状态配置
// 会话状态只做临时保存，过期即丢弃
type SessionConfig struct {
	Store     string        `mapstructure:"store"` // memory | redis
	TTL       time.Duration `mapstructure:"ttl"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

// RateLimitConfig 写接口限流配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LinksConfig 外部链接与联系方式
type LinksConfig struct {
	ApplicationURL  string `mapstructure:"application_url"`
	FAFSAURL        string `mapstructure:"fafsa_url"`
	AdmissionsEmail string `mapstructure:"admissions_email"`
	WebsiteURL      string `mapstructure:"website_url"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FeatureConfig 功能开关配置
type FeatureConfig struct {
	I20FormEnabled bool `mapstructure:"i20_form_enabled"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.body_limit_bytes", 64<<10)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.key_prefix", "nhcc:session:")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("links.application_url", "https://www.newhope.edu/apply")
	v.SetDefault("links.fafsa_url", "https://studentaid.gov/h/apply-for-aid/fafsa")
	v.SetDefault("links.admissions_email", "admissions@newhope.edu")
	v.SetDefault("links.website_url", "https://www.newhope.edu")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("feature.i20_form_enabled", true)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("NHCC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Server.BodyLimitBytes <= 0 {
		return fmt.Errorf("配置校验失败: server.body_limit_bytes 必须大于 0")
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("配置校验失败: session.store 只能是 memory 或 redis，当前为 %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("配置校验失败: session.ttl 必须大于 0")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("配置校验失败: rate_limit.requests 与 rate_limit.window 必须大于 0")
	}
	for name, raw := range map[string]string{
		"links.application_url": c.Links.ApplicationURL,
		"links.fafsa_url":       c.Links.FAFSAURL,
		"links.website_url":     c.Links.WebsiteURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("配置校验失败: %s 不是合法的 http(s) 地址", name)
		}
	}
	return nil
}

// NeedsRedis 当前配置是否需要连接 Redis
func (c *Config) NeedsRedis() bool {
	return c.Session.Store == SessionStoreRedis || c.RateLimit.Enabled
}
