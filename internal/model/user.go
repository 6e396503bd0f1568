// File: internal/model/user.go
package model

import "time"

// User 帳號資料，username 建立後不可變更
// HashedPassword 為 bcrypt 原始位元組，直接對應 BYTEA 欄位，
// 不做任何字串或 hex 轉換，確保寫入與讀回逐位元一致。
type User struct {
	Username       string     `db:"username" json:"username"`
	HashedPassword []byte     `db:"hashed_password" json:"-"`
	IsAdmin        bool       `db:"is_admin" json:"is_admin"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	LastLoginAt    *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}
