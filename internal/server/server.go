// Package server assembles the gin engine that serves every collection.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lingua/api/internal/blob"
	"github.com/lingua/api/internal/handler"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/middleware"
	"github.com/lingua/api/internal/model"
	"github.com/lingua/api/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type Options struct {
	DB               *gorm.DB
	Log              logging.Logger
	JWTSecret        string
	EnforceOwnership bool
	BodyLimitBytes   int64
	// Limiter is optional; writes are not limited without one.
	Limiter middleware.Checker
	// Images is optional; image payloads stay inline without one.
	Images *blob.ImageOffloader
	// Google is optional; the OAuth routes are not mounted without one.
	Google *oauth2.Config
	// FrontendURL, when set, receives the token after sign-in as a redirect.
	FrontendURL string
	// Auth overrides the handler built from Google, for tests.
	Auth *handler.AuthHandler
}

// New builds the router. Handlers panicking are answered with a generic 500.
func New(opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "handler panicked", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, "Something went wrong!")
	}))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())
	if opts.BodyLimitBytes > 0 {
		r.Use(middleware.BodyLimit(opts.BodyLimitBytes))
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := opts.Auth
	if authHandler == nil && opts.Google != nil {
		authHandler = handler.NewAuthHandler(opts.JWTSecret, opts.Google, log).
			WithFrontendRedirect(opts.FrontendURL)
	}
	if authHandler != nil {
		authHandler.Register(r)
	}

	api := r.Group("")
	if opts.EnforceOwnership {
		api.Use(middleware.RequireAuth(opts.JWTSecret))
	} else {
		api.Use(middleware.OptionalAuth(opts.JWTSecret))
	}
	if opts.Limiter != nil {
		api.Use(writesOnly(middleware.RateLimit(opts.Limiter, "write", log)))
	}

	history := handler.NewCRUDHandler(store.NewCollection[model.History](opts.DB, "history"), handler.HistoryConfig, log).
		EnforceOwnership(opts.EnforceOwnership)
	voice := handler.NewCRUDHandler(store.NewCollection[model.VoiceHistory](opts.DB, "voiceHistory"), handler.VoiceHistoryConfig, log).
		EnforceOwnership(opts.EnforceOwnership)
	favorites := handler.NewCRUDHandler(store.NewCollection[model.Favorite](opts.DB, "favorites"), handler.FavoriteConfig, log).
		EnforceOwnership(opts.EnforceOwnership)
	images := handler.NewCRUDHandler(store.NewCollection[model.ImageSave](opts.DB, "imageSave"), handler.ImageSaveConfig, log).
		EnforceOwnership(opts.EnforceOwnership).
		WithHooks(imageHooks(opts.Images))
	bookmarks := handler.NewBookmarkHandler(store.NewCollection[model.Bookmark](opts.DB, "bookmarks"), opts.EnforceOwnership, log)

	historyGroup := api.Group("/history")
	history.Register(historyGroup)
	bookmarks.Register(historyGroup)

	voice.Register(api.Group("/voiceHistory"))
	voice.Register(api.Group("/voicehistory"))
	favorites.Register(api.Group("/favorites"))
	images.Register(api.Group("/imageSave"))

	return r
}

func writesOnly(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			next(c)
		}
	}
}

func imageHooks(offloader *blob.ImageOffloader) handler.Hooks[model.ImageSave, *model.ImageSave] {
	if offloader == nil {
		return handler.Hooks[model.ImageSave, *model.ImageSave]{}
	}
	return handler.Hooks[model.ImageSave, *model.ImageSave]{
		BeforeCreate: func(ctx context.Context, img *model.ImageSave) error {
			return offloader.Offload(ctx, img)
		},
		AfterList: offloader.Resolve,
	}
}
