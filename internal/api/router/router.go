package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"faculty-schedule/backend/config"
	"faculty-schedule/backend/internal/api/handler"
	"faculty-schedule/backend/internal/api/middleware"
	"faculty-schedule/backend/pkg/jwt"
	"faculty-schedule/backend/pkg/redis"
)

// Setup wires the Gin engine: global middleware, health check and the
// /api/v1 route tree. Reads are open to any authenticated role; mutations
// of referentials and the schedule are admin-only.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			// Unauthenticated endpoints get a per-IP limiter against
			// credential stuffing and signup floods.
			loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/register", loginLimit, h.Auth.Register)
			auth.POST("/refresh", loginLimit, h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			adminOnly := middleware.RoleAuth("admin")

			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.List)
				departments.GET("/:id", h.Department.Get)
				departments.POST("", adminOnly, h.Department.Create)
				departments.PUT("/:id", adminOnly, h.Department.Update)
				departments.DELETE("/:id", adminOnly, h.Department.Delete)
			}

			programs := authorized.Group("/programs")
			{
				programs.GET("", h.Program.List)
				programs.GET("/:id", h.Program.Get)
				programs.POST("", adminOnly, h.Program.Create)
				programs.PUT("/:id", adminOnly, h.Program.Update)
				programs.DELETE("/:id", adminOnly, h.Program.Delete)
			}

			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", h.Teacher.List)
				teachers.GET("/:id", h.Teacher.Get)
				teachers.POST("", adminOnly, h.Teacher.Create)
				teachers.PUT("/:id", adminOnly, h.Teacher.Update)
				teachers.DELETE("/:id", adminOnly, h.Teacher.Delete)
			}

			rooms := authorized.Group("/rooms")
			{
				rooms.GET("", h.Room.List)
				rooms.GET("/:id", h.Room.Get)
				rooms.POST("", adminOnly, h.Room.Create)
				rooms.PUT("/:id", adminOnly, h.Room.Update)
				rooms.DELETE("/:id", adminOnly, h.Room.Delete)
			}

			courses := authorized.Group("/courses")
			{
				courses.GET("", h.Course.List)
				courses.GET("/:id", h.Course.Get)
				courses.POST("", adminOnly, h.Course.Create)
				courses.PUT("/:id", adminOnly, h.Course.Update)
				courses.DELETE("/:id", adminOnly, h.Course.Delete)
			}

			groups := authorized.Group("/groups")
			{
				groups.GET("", h.Group.List)
				groups.GET("/:id", h.Group.Get)
				groups.POST("", adminOnly, h.Group.Create)
				groups.PUT("/:id", adminOnly, h.Group.Update)
				groups.DELETE("/:id", adminOnly, h.Group.Delete)
			}

			schedule := authorized.Group("/schedule")
			{
				schedule.GET("", h.Schedule.List)
				schedule.GET("/:id", h.Schedule.Get)
				schedule.POST("", adminOnly, h.Schedule.Create)
				schedule.PUT("/:id", adminOnly, h.Schedule.Update)
				schedule.DELETE("/:id", adminOnly, h.Schedule.Delete)
			}

			timetable := authorized.Group("/timetable")
			{
				timetable.GET("", h.Timetable.Grid)
				timetable.GET("/student", middleware.RoleAuth("student"), h.Timetable.MyStudentTimetable)
				timetable.GET("/teacher", middleware.RoleAuth("teacher"), h.Timetable.MyTeacherTimetable)
			}

			export := authorized.Group("/export")
			{
				export.GET("/timetable", h.Export.GridXLSX)
				export.GET("/teachers/:id/ics", h.Export.TeacherICS)
			}

			authorized.GET("/dashboard", adminOnly, h.Dashboard.Stats)
		}
	}

	return r
}
