package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 測試可覆寫此變數
var pgxpoolNewWithConfig = pgxpool.NewWithConfig

// NewPgxPool 建立資料庫連線池
// connectTimeout 限制單次建立連線的等待時間，逾時即回傳連線錯誤而非無限等待
func NewPgxPool(ctx context.Context, url string, connectTimeout time.Duration) (DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	if connectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = connectTimeout
	}
	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
