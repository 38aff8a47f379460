package http

import (
	"github.com/gin-gonic/gin"

	"github.com/florianfabre/countrynews/internal/auth"
	"github.com/florianfabre/countrynews/internal/database"
	"github.com/florianfabre/countrynews/internal/tasks"
)

// RouterConfig holds all dependencies needed to build the router.
type RouterConfig struct {
	Database        *database.Database
	CountryStore    CountryStore
	FavouritesStore FavouritesStore
	AuthService     *auth.Service
	SessionManager  *auth.SessionManager
	AuthMiddleware  *auth.Middleware
	RateLimiter     *auth.RateLimiter
	TaskClient      *tasks.Client
	Version         string
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(auth.SecurityHeadersMiddleware())

	// Session must load before auth reads from it
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager, cfg.RateLimiter)
	authController.RegisterRoutes(router)

	countriesController := NewCountriesController(cfg.CountryStore, cfg.TaskClient)
	favouritesController := NewFavouritesController(cfg.FavouritesStore)

	api := router.Group("/api")
	{
		api.GET("/countries", countriesController.ListCountries)
		api.POST("/countries/refresh", countriesController.RefreshCountries)
		api.GET("/countries/:iso2", countriesController.GetCountry)

		api.GET("/favourites", favouritesController.ListFavourites)
		api.POST("/favourites/:id", favouritesController.AddFavourite)
		api.DELETE("/favourites/:id", favouritesController.RemoveFavourite)
		api.GET("/favourites/:id", favouritesController.GetFavourite)
	}

	return router
}
