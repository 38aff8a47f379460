package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/florianfabre/countrynews/internal/auth"
	"github.com/florianfabre/countrynews/internal/config"
	"github.com/florianfabre/countrynews/internal/connectivity"
	"github.com/florianfabre/countrynews/internal/countriesapi"
	"github.com/florianfabre/countrynews/internal/database"
	"github.com/florianfabre/countrynews/internal/database/countries"
	"github.com/florianfabre/countrynews/internal/database/favourites"
	"github.com/florianfabre/countrynews/internal/database/users"
	http_controllers "github.com/florianfabre/countrynews/internal/http"
	"github.com/florianfabre/countrynews/internal/scheduler"
	"github.com/florianfabre/countrynews/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting CountryNews v%s", version)

	// The app is useless without the upstream catalog, refuse to start
	// when it cannot be reached.
	checker, err := connectivity.NewChecker(cfg.Countries.BaseURL, cfg.Countries.Timeout)
	if err != nil {
		log.Fatalf("Invalid countries base URL: %v", err)
	}
	probeCtx, probeCancel := context.WithTimeout(context.Background(), cfg.Countries.Timeout)
	if err := checker.Check(probeCtx); err != nil {
		probeCancel()
		log.Fatalf("No network connectivity: %v", err)
	}
	probeCancel()
	log.Printf("Upstream %s reachable", checker.Address())

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	countryRepo := countries.NewRepository(db.DB)
	favouritesRepo := favourites.NewRepository(db.DB)
	usersRepo := users.NewRepository(db.DB)

	apiClient := countriesapi.NewClient(cfg.Countries.BaseURL, cfg.Countries.Timeout)
	synchronizer := countriesapi.NewSynchronizer(apiClient, countryRepo)

	// Refresh the catalog in the background so startup is not blocked
	// on a slow upstream.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		refreshed := synchronizer.Refresh(ctx)
		log.Printf("Startup refresh finished with %d countries", len(refreshed))
	}()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewRefreshCountriesQueue(synchronizer),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic catalog sync, opt-in
	syncScheduler := scheduler.NewCountrySyncScheduler(synchronizer, cfg.CountrySync)
	if err := syncScheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start country sync scheduler: %v", err)
	}

	verifier := auth.NewVerifier(cfg.Auth)
	authService := auth.NewService(usersRepo, verifier)
	sessionManager := auth.NewSessionManager(cfg.Auth)
	authMiddleware := auth.NewMiddleware(sessionManager)
	rateLimiter := auth.NewRateLimiter(auth.DefaultRateLimitConfig())

	if hasUsers, err := authService.HasUsers(); err != nil {
		log.Printf("WARNING: could not count users: %v", err)
	} else if !hasUsers {
		log.Printf("No users found. POST /register to create an account.")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:        db,
		CountryStore:    countryRepo,
		FavouritesStore: favouritesRepo,
		AuthService:     authService,
		SessionManager:  sessionManager,
		AuthMiddleware:  authMiddleware,
		RateLimiter:     rateLimiter,
		TaskClient:      taskClient,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		syncScheduler.Stop()
		rateLimiter.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
