package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/course-signup-api/internal/handler"
	"github.com/noah-isme/course-signup-api/internal/middleware"
	"github.com/noah-isme/course-signup-api/internal/repository"
	"github.com/noah-isme/course-signup-api/internal/service"
	"github.com/noah-isme/course-signup-api/pkg/config"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-signup-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-signup-api/pkg/middleware/requestid"
	"github.com/noah-isme/course-signup-api/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	courseRepo, err := repository.NewCourseRepository(cfg.Data.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open courses document", "error", err)
	}
	signupRepo, err := repository.NewSignupRepository(cfg.Data.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open signups document", "error", err)
	}
	gradeRepo, err := repository.NewGradeRepository(cfg.Data.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open grades document", "error", err)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		courseRepo.SetObserver(metricsSvc)
		signupRepo.SetObserver(metricsSvc)
		gradeRepo.SetObserver(metricsSvc)
	}

	validate := validator.New()
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	signupSvc := service.NewSignupService(signupRepo, courseRepo, validate, logr)
	gradeSvc := service.NewGradeService(gradeRepo, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	handler.Register(r, handler.Handlers{
		Courses: handler.NewCourseHandler(courseSvc),
		Sheets:  handler.NewSheetHandler(signupSvc),
		Slots:   handler.NewSlotHandler(signupSvc),
		Grades:  handler.NewGradeHandler(gradeSvc),
	})

	if cfg.Web.Enabled {
		registerFrontend(r, cfg.Web.Dir)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "dataDir", cfg.Data.Dir)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// registerFrontend serves the static browser client, falling back to
// index.html for non-API paths so a page reload keeps working.
func registerFrontend(r *gin.Engine, webDir string) {
	index := filepath.Join(webDir, "index.html")
	r.StaticFile("/", index)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
			return
		}
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusMethodNotAllowed)
			return
		}
		path := filepath.Join(webDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(index)
	})
}
