package store

import (
	"context"
	"errors"
	"fmt"

	"culture-media/internal/database"
	"culture-media/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUsernameTaken 使用者名稱已存在（唯一約束衝突）
var ErrUsernameTaken = errors.New("username already taken")

// uniqueViolation PostgreSQL 唯一約束違反的 SQLSTATE
const uniqueViolation = "23505"

// AnyUsers 回報 users 表是否存在任何帳號
// 僅用於首次啟用與登入的分流判斷，不洩漏任何帳號內容
func AnyUsers(ctx context.Context, db database.DB) (bool, error) {
	row := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("AnyUsers: %w", err)
	}
	return exists, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT username, hashed_password, is_admin, created_at, last_login_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.Username,
		&u.HashedPassword,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.LastLoginAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

// CreateUser 新增帳號，單一 INSERT 保證原子性
// 名稱重複回傳 ErrUsernameTaken，既有紀錄不受影響
func CreateUser(ctx context.Context, db database.DB, u *model.User) error {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, hashed_password, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		u.Username,
		u.HashedPassword,
		u.IsAdmin,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("CreateUser: %w", ErrUsernameTaken)
		}
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

// CreateFirstAdmin 建立首位管理員
// WHERE NOT EXISTS 讓同時送出的首次啟用只有第一筆成功，
// 回傳 false 表示已有帳號存在（含輸掉競爭的情況）
func CreateFirstAdmin(ctx context.Context, db database.DB, u *model.User) (bool, error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO users (username, hashed_password, is_admin)
		 SELECT $1, $2, TRUE
		 WHERE NOT EXISTS (SELECT 1 FROM users)`,
		u.Username,
		u.HashedPassword,
	)
	if err != nil {
		return false, fmt.Errorf("CreateFirstAdmin: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// TouchLastLogin 更新最後登入時間，由背景工作呼叫
func TouchLastLogin(ctx context.Context, db database.DB, username string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = now() WHERE username = $1`,
		username,
	)
	if err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}

// ListUsers 列出所有帳號（不含密碼哈希），供管理員面板使用
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT username, is_admin, created_at, last_login_at
		 FROM users ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.IsAdmin, &u.CreatedAt, &u.LastLoginAt); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
