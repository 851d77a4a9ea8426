package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/config"
	"github.com/bagerxx/OgretmenPlan/internal/api/handler"
	"github.com/bagerxx/OgretmenPlan/internal/api/middleware"
	"github.com/bagerxx/OgretmenPlan/pkg/jwt"
	"github.com/bagerxx/OgretmenPlan/pkg/redis"
	"github.com/bagerxx/OgretmenPlan/pkg/validate"
)

const (
	roleAdmin   = jwt.RoleAdmin
	roleTeacher = jwt.RoleTeacher
)

// Setup 初始化并返回 Gin 路由引擎
// db 与 rdb 可为 nil：db 为 nil 时健康检查不探测数据库，rdb 为 nil 时关闭限流与 Token 黑名单
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	if err := validate.Setup(); err != nil {
		logger.Warn("校验器初始化失败，错误信息将不会翻译", zap.Error(err))
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", healthCheck(db, rdb))

	// ── API v1（全部需要认证）──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr, rdb))
	v1.Use(middleware.RateLimit(rdb, cfg.Planner.RateLimit, cfg.Planner.RateWindow, logger))
	{
		// 学年日历模块
		calendars := v1.Group("/calendars")
		{
			calendars.POST("/generate", middleware.RoleAuth(roleAdmin), h.Calendar.Generate)
			calendars.POST("/preview", h.Calendar.Preview)
			calendars.GET("", h.Calendar.ListYears)
			calendars.GET("/:year", h.Calendar.GetYear)
			calendars.GET("/:year/weeks", h.Calendar.ListWeeks)
			calendars.GET("/:year/ics", h.Export.ExportCalendar)
		}

		// 课程模块
		courses := v1.Group("/courses")
		{
			courses.POST("", middleware.RoleAuth(roleAdmin), h.Course.CreateCourse)
			courses.GET("", h.Course.ListCourses)
			courses.GET("/:id", h.Course.GetCourse)
			courses.DELETE("/:id", middleware.RoleAuth(roleAdmin), h.Course.DeleteCourse)
			courses.PUT("/:id/items", middleware.RoleAuth(roleAdmin), h.Course.ReplaceItems)
		}

		// 教学计划模块
		plans := v1.Group("/plans")
		{
			plans.POST("/distribute", middleware.RoleAuth(roleAdmin, roleTeacher), h.Plan.Distribute)
			plans.GET("", h.Plan.ListPlans)
			plans.GET("/:id", h.Plan.GetPlan)
			plans.DELETE("/:id", middleware.RoleAuth(roleAdmin, roleTeacher), h.Plan.DeletePlan)
			plans.GET("/:id/stats", h.Plan.GetStats)
			plans.POST("/:id/copy", middleware.RoleAuth(roleAdmin, roleTeacher), h.Plan.CopyPlan)
			plans.PATCH("/:id/allocations/:allocationId", middleware.RoleAuth(roleAdmin, roleTeacher), h.Plan.UpdateAllocation)
			plans.GET("/:id/export", h.Export.ExportPlan)
		}
	}

	return r
}

// healthCheck 存活与依赖探测；数据库不可用时返回 503，Redis 不可用只标记降级
func healthCheck(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		code := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
				status["status"] = "unavailable"
				status["database"] = "down"
				code = http.StatusServiceUnavailable
			} else {
				status["database"] = "up"
			}
		}
		if rdb == nil {
			status["redis"] = "disabled"
		}

		c.JSON(code, status)
	}
}
