package api

// swagger:model api.SetupRequest
type SetupRequest struct {
	Username string `form:"username" validate:"required" example:"admin"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}
