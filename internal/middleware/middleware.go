package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"culture-media/internal/cache"
	"culture-media/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	// ContextSessionKey 本次請求重建出的 Session 值
	ContextSessionKey = "session"
	// ContextClaimsKey 已驗證的令牌內容，登出撤銷時需要 jti 與到期時間
	ContextClaimsKey = "claims"
	// RevokedKeyPrefix 撤銷名單在 Redis 的 key 前綴
	RevokedKeyPrefix = "revoked:"
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// checkRevoked 查撤銷名單；redis.Nil 表示未被撤銷
// 快取連線失敗一律拒絕請求，不得當作「未撤銷」放行
func checkRevoked(ctx context.Context, rdb cache.Cache, jti string) error {
	_, err := rdb.Get(ctx, RevokedKeyPrefix+jti).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
}

// RequireAuth 驗證 Bearer 令牌並將 Session 與 claims 放入請求情境
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			if err := checkRevoked(c.Request().Context(), rdb, claims.ID); err != nil {
				return err
			}
			c.Set(ContextClaimsKey, claims)
			c.Set(ContextSessionKey, service.SessionFromClaims(claims))
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上再要求管理員角色
func RequireAdmin(rdb cache.Cache) echo.MiddlewareFunc {
	auth := RequireAuth(rdb)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			sess, ok := SessionFromContext(c)
			if !ok || sess.Role != service.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}

// SessionFromContext 取出 RequireAuth 放入的 Session 值
func SessionFromContext(c echo.Context) (service.Session, bool) {
	sess, ok := c.Get(ContextSessionKey).(service.Session)
	return sess, ok
}

// SessionFromRequest 嘗試從請求的令牌重建 Session
// 無令牌、令牌無效或已撤銷時回傳未驗證的零值 Session
// 供不強制登入的端點（如狀態查詢）使用
func SessionFromRequest(c echo.Context, rdb cache.Cache) service.Session {
	claims, err := extractClaims(c)
	if err != nil {
		return service.Session{}
	}
	if err := checkRevoked(c.Request().Context(), rdb, claims.ID); err != nil {
		return service.Session{}
	}
	return service.SessionFromClaims(claims)
}
