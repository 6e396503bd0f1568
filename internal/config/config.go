package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config 服務啟動所需的全部環境設定
// 缺少必要欄位視為設定錯誤，服務啟動前即中止
type Config struct {
	Port           string        `env:"PORT, default=8080"`
	DatabaseURL    string        `env:"DATABASE_URL, required"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT, default=5s"`
	LogLevel       string        `env:"LOG_LEVEL, default=info"`
	LogPretty      bool          `env:"LOG_PRETTY, default=false"`
	WorkerCount    int           `env:"WORKER_COUNT, default=1"`

	Redis RedisConfig
}

// RedisConfig Redis 連線設定
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, required"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// Load 以 go-envconfig 讀取環境變數並回傳設定
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
