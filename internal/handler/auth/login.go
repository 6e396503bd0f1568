// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"culture-media/internal/api"
	"culture-media/internal/database"
	"culture-media/internal/logger"
	"culture-media/internal/metrics"
	"culture-media/internal/model"
	"culture-media/internal/service"
	"culture-media/internal/store"
	"culture-media/internal/worker"

	"github.com/labstack/echo/v4"
)

const accessTokenTTL = 24 * time.Hour

// 測試可覆寫此變數
var touchLastLogin = store.TouchLastLogin

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// 查無帳號與密碼錯誤回應完全相同，不提供帳號列舉線索
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，回傳存取令牌與角色
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Failure     503      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 驗證帳號密碼，Session 為本次請求專屬的值
		var sess service.Session
		ok, err := service.Login(c.Request().Context(), db, &sess, req.Username, req.Password)
		if err != nil {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "user store unavailable"})
		}
		if !ok {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		// 發行存取令牌
		token, err := service.IssueAccessToken(model.User{
			Username: sess.Identity,
			IsAdmin:  sess.Role == service.RoleAdmin,
		}, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: fmt.Sprintf("failed to issue token: %v", err)})
		}

		// 最後登入時間交給背景工作，不阻塞回應
		username := sess.Identity
		wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := touchLastLogin(ctx, db, username); err != nil {
				log := logger.Get()
				log.Warn().Err(err).Str("username", username).Msg("touch last login failed")
			}
		})

		metrics.LoginsTotal.WithLabelValues("success").Inc()
		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			Role:        string(sess.Role),
		})
	}
}
