// File: internal/service/session.go
package service

// Role 已驗證身分的角色
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Session 單一互動情境的驗證狀態
// 以明確的值在每次請求中傳遞，不使用任何行程層級的共享狀態
// 零值即為未驗證狀態
type Session struct {
	Authenticated bool
	Identity      string
	Role          Role
}

// Reset 將 Session 還原為未驗證的初始值
func (s *Session) Reset() {
	*s = Session{}
}

func roleFor(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleStandard
}
