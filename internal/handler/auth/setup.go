// File: internal/handler/auth/setup.go
package auth

import (
	"fmt"
	"net/http"

	"culture-media/internal/api"
	"culture-media/internal/database"
	"culture-media/internal/metrics"
	"culture-media/internal/service"

	"github.com/labstack/echo/v4"
)

// SetupHandler 首次啟用：建立首位管理員帳號
// 成功後前端以同一組帳密進行登入
// @Summary     首次啟用建立管理員
// @Description 僅在尚無任何帳號時成功；同時送出的請求只有第一筆生效
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "管理員名稱"
// @Param       password formData string true "管理員密碼"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /setup [post]
func SetupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SetupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		outcome, err := service.BootstrapAdmin(c.Request().Context(), db, req.Username, req.Password)
		if err != nil {
			metrics.BootstrapTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "user store unavailable"})
		}

		metrics.BootstrapTotal.WithLabelValues(string(outcome)).Inc()
		switch outcome {
		case service.CreateInvalidInput:
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username and password are required"})
		case service.CreateConflict:
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "an administrator account already exists"})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			Username: req.Username,
			IsAdmin:  true,
		})
	}
}
