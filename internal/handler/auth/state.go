// File: internal/handler/auth/state.go
package auth

import (
	"net/http"

	"culture-media/internal/api"
	"culture-media/internal/cache"
	"culture-media/internal/database"
	"culture-media/internal/middleware"
	"culture-media/internal/service"

	"github.com/labstack/echo/v4"
)

// StateHandler 回報本次互動的閘門狀態
// 每次呼叫重新判定：無帳號 → setup；有帳號未驗證 → login；令牌有效 → authenticated
// @Summary     查詢驗證狀態
// @Description 前端依此決定顯示首次啟用表單、登入表單或主畫面
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.SessionResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /session [get]
func StateHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromRequest(c, rdb)

		state, err := service.Evaluate(c.Request().Context(), db, sess)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "user store unavailable"})
		}

		resp := api.SessionResponse{State: string(state)}
		if sess.Authenticated {
			resp.Username = sess.Identity
			resp.Role = string(sess.Role)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
