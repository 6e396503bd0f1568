package api

import "time"

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role" example:"standard"`
}

// SessionResponse 本次互動的閘門狀態：setup、login 或 authenticated
// swagger:model api.SessionResponse
type SessionResponse struct {
	State    string `json:"state" example:"login"`
	Username string `json:"username,omitempty" example:"alice"`
	Role     string `json:"role,omitempty" example:"standard"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	Username    string     `json:"username" example:"alice"`
	IsAdmin     bool       `json:"is_admin" example:"false"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// swagger:model api.RecordResponse
type RecordResponse struct {
	ID         int64     `json:"id" example:"7"`
	Species    string    `json:"species" example:"Musa acuminata"`
	Phase      string    `json:"phase" example:"multiplication"`
	Ingredient string    `json:"ingredient" example:"BAP"`
	Quantity   float64   `json:"quantity" example:"2.5"`
	Unit       string    `json:"unit" example:"mg/L"`
	Notes      string    `json:"notes"`
	CreatedBy  string    `json:"created_by" example:"alice"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
