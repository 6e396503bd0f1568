package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `form:"username" validate:"required" example:"alice"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
	IsAdmin  bool   `form:"is_admin" example:"false"`
}
