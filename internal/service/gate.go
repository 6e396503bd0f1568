// File: internal/service/gate.go
package service

import (
	"context"
	"errors"

	"culture-media/internal/database"
	"culture-media/internal/model"
	"culture-media/internal/store"

	"github.com/jackc/pgx/v5"
)

// State 登入閘門在單次互動中的狀態
type State string

const (
	// StateSetup 尚無任何帳號，顯示首次啟用表單
	StateSetup State = "setup"
	// StateLogin 已有帳號但此情境尚未驗證
	StateLogin State = "login"
	// StateAuthenticated 此情境已驗證，交還給應用本體
	StateAuthenticated State = "authenticated"
)

// CreateOutcome 建立帳號的結果，屬於正常控制流而非錯誤
type CreateOutcome string

const (
	CreateOK           CreateOutcome = "ok"
	CreateInvalidInput CreateOutcome = "invalid_input"
	CreateConflict     CreateOutcome = "conflict"
)

// Evaluate 對單次互動判定閘門狀態
// 已驗證的 Session 直接短路，不觸碰資料庫
// 存在性查詢失敗時回傳錯誤，絕不臆測為「尚無帳號」
func Evaluate(ctx context.Context, db database.DB, sess Session) (State, error) {
	if sess.Authenticated {
		return StateAuthenticated, nil
	}
	exists, err := store.AnyUsers(ctx, db)
	if err != nil {
		return "", err
	}
	if !exists {
		return StateSetup, nil
	}
	return StateLogin, nil
}

// BootstrapAdmin 首次啟用：建立首位管理員帳號
// 空白欄位在觸碰資料庫前即被拒絕
// 已有帳號（含同時送出而輸掉競爭）回報 CreateConflict
func BootstrapAdmin(ctx context.Context, db database.DB, username, password string) (CreateOutcome, error) {
	if username == "" || password == "" {
		return CreateInvalidInput, nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	created, err := store.CreateFirstAdmin(ctx, db, &model.User{
		Username:       username,
		HashedPassword: hash,
		IsAdmin:        true,
	})
	if err != nil {
		return "", err
	}
	if !created {
		return CreateConflict, nil
	}
	return CreateOK, nil
}

// CreateAccount 由管理員建立一般帳號
func CreateAccount(ctx context.Context, db database.DB, username, password string, isAdmin bool) (CreateOutcome, error) {
	if username == "" || password == "" {
		return CreateInvalidInput, nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	err = store.CreateUser(ctx, db, &model.User{
		Username:       username,
		HashedPassword: hash,
		IsAdmin:        isAdmin,
	})
	if errors.Is(err, store.ErrUsernameTaken) {
		return CreateConflict, nil
	}
	if err != nil {
		return "", err
	}
	return CreateOK, nil
}

// Login 驗證帳號密碼，成功時將 Session 轉為已驗證
// 查無帳號與密碼不符一律回傳 (false, nil)，呼叫端不得區分兩者
// 連線層錯誤以 error 回傳，絕不視為驗證失敗
func Login(ctx context.Context, db database.DB, sess *Session, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	u, err := store.GetUserByUsername(ctx, db, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := ComparePassword(u.HashedPassword, password); err != nil {
		return false, nil
	}
	sess.Authenticated = true
	sess.Identity = u.Username
	sess.Role = roleFor(u.IsAdmin)
	return true, nil
}

// Logout 清除 Session，回到未驗證的初始值
func Logout(sess *Session) {
	sess.Reset()
}
