package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/college-portal/api/swagger"
	"github.com/noah-isme/college-portal/internal/middleware"
	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/service"
	"github.com/noah-isme/college-portal/pkg/config"
	"github.com/noah-isme/college-portal/pkg/logger"
	corsmiddleware "github.com/noah-isme/college-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/college-portal/pkg/middleware/requestid"
)

// RouterConfig collects what the portal router needs.
type RouterConfig struct {
	Config  *config.Config
	Deps    portal.Deps
	Logger  *zap.Logger
	Metrics *service.MetricsService
	Exports *service.ExportService
}

// NewRouter builds the portal gateway. Every portal route requires a bearer token,
// which is forwarded to the backend unchanged.
func NewRouter(rc RouterConfig) *gin.Engine {
	cfg := rc.Config
	if rc.Logger == nil {
		rc.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(rc.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(rc.Metrics))

	metricsHandler := NewMetricsHandler(rc.Metrics, rc.Deps.API.BaseURL())
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
		r.GET("/metrics/summary", metricsHandler.Summary)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	resolve := func(ctx context.Context) (models.Identity, error) {
		user, err := rc.Deps.API.Auth.Me(ctx)
		if err != nil {
			return models.Identity{}, err
		}
		return models.Identity{UserID: user.ID, Role: user.Role, Name: user.Name}, nil
	}

	admins := middleware.RequireRoles(models.RoleAdmin)
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty)
	faculty := middleware.RequireRoles(models.RoleFaculty)
	students := middleware.RequireRoles(models.RoleStudent)

	adminHandler := NewAdminHandler(rc.Deps)
	exportHandler := NewExportHandler(rc.Deps, rc.Exports)
	announcementHandler := NewAnnouncementHandler(rc.Deps)
	courseHandler := NewCourseHandler(rc.Deps)
	studentHandler := NewStudentHandler(rc.Deps)
	facultyHandler := NewFacultyHandler(rc.Deps)

	api := r.Group(cfg.APIPrefix, middleware.Bearer(resolve))

	admin := api.Group("/admin", admins)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/students", adminHandler.Students)
	admin.DELETE("/students/:id", adminHandler.DeleteStudent)
	admin.GET("/faculty", adminHandler.Faculty)
	admin.DELETE("/faculty/:id", adminHandler.DeleteFaculty)
	admin.GET("/export/:roster", exportHandler.Roster)
	admin.GET("/announcements", announcementHandler.List)
	admin.POST("/announcements", announcementHandler.Create)
	admin.PUT("/announcements/:id", announcementHandler.Update)
	admin.DELETE("/announcements/:id", announcementHandler.Delete)

	api.GET("/announcements", announcementHandler.NoticeBoard)
	api.GET("/announcements/:id", announcementHandler.Get)

	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id", courseHandler.Get)
	api.GET("/courses/:id/students", staff, courseHandler.Students)
	api.POST("/courses", admins, courseHandler.Create)
	api.PUT("/courses/:id", admins, courseHandler.Update)
	api.DELETE("/courses/:id", admins, courseHandler.Delete)

	student := api.Group("/student", students)
	student.GET("/dashboard", studentHandler.Dashboard)
	student.GET("/courses", studentHandler.Courses)
	student.GET("/courses/:id", studentHandler.Course)
	student.GET("/grades", studentHandler.Grades)
	student.POST("/assignments/:id/submit", studentHandler.Submit)

	fac := api.Group("/faculty", faculty)
	fac.GET("/dashboard", facultyHandler.Dashboard)
	fac.GET("/students", facultyHandler.Students)

	api.GET("/classroom/:courseId", facultyHandler.Classroom)
	api.POST("/classroom/:courseId/sessions", faculty, facultyHandler.ScheduleSession)
	api.POST("/grades", faculty, facultyHandler.RecordGrade)
	api.GET("/grades/courses/:id", staff, facultyHandler.CourseGrades)

	return r
}
