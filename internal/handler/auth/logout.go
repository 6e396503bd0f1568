// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"
	"time"

	"culture-media/internal/api"
	"culture-media/internal/cache"
	"culture-media/internal/middleware"
	"culture-media/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 登出：撤銷本令牌並清除 Session
// 令牌 jti 進入撤銷名單直到原本的到期時間，之後同一令牌不再被接受
// @Summary     登出使用者
// @Tags        auth
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextClaimsKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		if sess, ok := middleware.SessionFromContext(c); ok {
			service.Logout(&sess)
		}

		if claims.ExpiresAt == nil {
			return c.NoContent(http.StatusNoContent)
		}
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl <= 0 {
			// 令牌已過期，無需進撤銷名單
			return c.NoContent(http.StatusNoContent)
		}
		if err := rdb.Set(c.Request().Context(), middleware.RevokedKeyPrefix+claims.ID, "1", ttl).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "session store unavailable"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
