package users

import (
	"net/http"

	"culture-media/internal/api"
	"culture-media/internal/database"
	"culture-media/internal/service"
	"culture-media/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫下列變數
var (
	createAccount = service.CreateAccount
	listUsers     = store.ListUsers
)

// @Summary     Create a new user
// @Description 由管理員建立新帳號；帳號建立後名稱與角色不可變更
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true  "使用者名稱"
// @Param       password formData string true  "使用者密碼"
// @Param       is_admin formData boolean false "是否為管理員"
// @Success     201      {object} api.UserResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Failure     503      {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		outcome, err := createAccount(c.Request().Context(), db, req.Username, req.Password, req.IsAdmin)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "user store unavailable"})
		}
		switch outcome {
		case service.CreateInvalidInput:
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username and password are required"})
		case service.CreateConflict:
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username already taken"})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			Username: req.Username,
			IsAdmin:  req.IsAdmin,
		})
	}
}

// @Summary     List users
// @Description 列出所有帳號供管理員面板使用，不含密碼哈希
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "user store unavailable"})
		}

		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.UserResponse{
				Username:    u.Username,
				IsAdmin:     u.IsAdmin,
				CreatedAt:   u.CreatedAt,
				LastLoginAt: u.LastLoginAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
