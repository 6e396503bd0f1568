// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"culture-media/internal/cache"
	"culture-media/internal/database"
	"culture-media/internal/handler"
	"culture-media/internal/handler/auth"
	"culture-media/internal/handler/records"
	"culture-media/internal/handler/users"
	"culture-media/internal/middleware"
	"culture-media/internal/worker"
)

// 請求指標中介層只建立一次，避免重複註冊 collector
var metricsMiddleware = echoprometheus.NewMiddleware("culture_media")

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	e.Use(metricsMiddleware)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	// 閘門狀態與首次啟用（不需登入）
	api.GET("/session", auth.StateHandler(db, rdb))
	api.POST("/setup", auth.SetupHandler(db))

	// 使用者登入、登出
	api.POST("/auth/login", auth.LoginHandler(db, wp))
	api.POST("/auth/logout", auth.LogoutHandler(rdb), middleware.RequireAuth(rdb))

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth(rdb))

	// 管理員專屬使用者面板
	apiUsers := api.Group("/users", middleware.RequireAdmin(rdb))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db))

	// 培養基成分紀錄 CRUD 與匯出
	apiRecords := api.Group("/records", middleware.RequireAuth(rdb))
	apiRecords.GET("", records.ListRecordsHandler(db))
	apiRecords.POST("", records.CreateRecordHandler(db))
	apiRecords.GET("/export", records.ExportRecordsHandler(db))
	apiRecords.GET("/species", records.ListSpeciesHandler(db))
	apiRecords.GET("/phases", records.ListPhasesHandler(db))
	apiRecords.GET("/:id", records.GetRecordHandler(db))
	apiRecords.PUT("/:id", records.UpdateRecordHandler(db))
	apiRecords.DELETE("/:id", records.DeleteRecordHandler(db))
}
