package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/config"
	"smat.com/campusapi/internal/middleware"

	campusHttp "smat.com/campusapi/internal/modules/campus/delivery/http"
	campusRepo "smat.com/campusapi/internal/modules/campus/repository"
	campusService "smat.com/campusapi/internal/modules/campus/service"

	scheduleHttp "smat.com/campusapi/internal/modules/schedule/delivery/http"
	scheduleRepo "smat.com/campusapi/internal/modules/schedule/repository"
	scheduleService "smat.com/campusapi/internal/modules/schedule/service"

	communityHttp "smat.com/campusapi/internal/modules/community/delivery/http"
	communityRepo "smat.com/campusapi/internal/modules/community/repository"
	communityService "smat.com/campusapi/internal/modules/community/service"

	healthHttp "smat.com/campusapi/internal/modules/health/delivery/http"
	healthService "smat.com/campusapi/internal/modules/health/service"

	searchService "smat.com/campusapi/internal/modules/search/service"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewServer wires every slice onto one gin engine. redisClient and index may
// be nil.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, index searchService.PostIndex, logger *zap.Logger) *Server {
	loc := cfg.Location()
	now := func() time.Time { return time.Now().In(loc) }

	menuRepo := campusRepo.NewMenuRepository(db)
	restaurantRepo := campusRepo.NewRestaurantRepository(db)
	campusSvc := campusService.NewCampusService(menuRepo, restaurantRepo, now, logger)
	campusHandler := campusHttp.NewCampusHandler(campusSvc)

	lectureRepo := scheduleRepo.NewLectureRepository(db)
	scheduleSvc := scheduleService.NewScheduleService(lectureRepo, now, logger)
	scheduleHandler := scheduleHttp.NewScheduleHandler(scheduleSvc)

	postRepo := communityRepo.NewPostRepository(db)
	communitySvc := communityService.NewCommunityService(postRepo, index, loc, logger)
	communityHandler := communityHttp.NewCommunityHandler(communitySvc)

	healthSvc := healthService.NewHealthService(
		cfg.AppVersion,
		now,
		healthService.DatabaseCheck(db),
		healthService.RedisCheck(redisClient),
		logger,
	)
	healthHandler := healthHttp.NewHealthHandler(healthSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders())

	api := router.Group("/api")

	campus := api.Group("/campus")
	{
		campus.GET("/menus", campusHandler.GetTodayMenus)
		campus.GET("/menus/date", campusHandler.GetMenusByDate)
		campus.GET("/menus/search", campusHandler.SearchMenus)
	}

	schedule := api.Group("/schedule")
	{
		schedule.GET("", scheduleHandler.GetWeeklySchedule)
		schedule.GET("/day", scheduleHandler.GetScheduleByDay)
		schedule.GET("/next", scheduleHandler.GetNextLecture)
	}

	community := api.Group("/community")
	{
		community.GET("/posts", communityHandler.GetAllPosts)
		community.GET("/posts/category", communityHandler.GetPostsByCategory)
		community.GET("/posts/recent", communityHandler.GetRecentPosts)
		community.GET("/posts/search", communityHandler.SearchPosts)
	}

	health := api.Group("/health")
	{
		health.GET("", healthHandler.Check)
		health.GET("/info", healthHandler.Info)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🚀 Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
