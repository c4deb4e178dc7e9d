// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, authentication, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/clipstream/go-video-backend/docs"
	"github.com/clipstream/go-video-backend/internal/config"
	"github.com/clipstream/go-video-backend/internal/http/handlers"
	"github.com/clipstream/go-video-backend/internal/http/middleware"
	"github.com/clipstream/go-video-backend/internal/repo"
	"github.com/clipstream/go-video-backend/internal/services"
	"github.com/clipstream/go-video-backend/internal/storage"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine, then mounts the versioned public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter (uploads need headroom)
//  6. Metrics
//  7. CORS, gzip, and security headers
//
// Authentication, idempotency validation, and rate limiting are applied per
// route group: the auth gate must run before the idempotency lookup (which
// needs the caller's identity), and the idempotency validator before the rate
// limiter so replays bypass token consumption.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.Uploader, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{middleware.HeaderIdempotencyKey},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit; must admit multipart video uploads
	r.Use(limitBody(cfg.UploadMaxBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) CORS posture (safe defaults: allow all if none configured)
	corsHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Compress JSON responses; media bytes never flow through this API.
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/store
	videoSvc := services.NewVideoService(db, store)
	h := handlers.New(
		services.NewUserService(db),
		videoSvc,
		services.NewCommentService(db),
		services.NewTweetService(db),
		services.NewLikeService(db),
		services.NewPlaylistService(db),
		services.NewSubscriptionService(db),
		services.NewDashboardService(db),
	)
	h.SetTokenConfig(handlers.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.JWTTTL,
	})

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())

	api := groupWithPrefix(r, cfg.APIBasePath)

	// Public endpoints: rate limited by IP.
	public := api.Group("")
	public.Use(rl.Handler())
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
		public.GET("/healthcheck", h.Healthcheck)
	}

	// Protected endpoints: auth → idempotency → rate limit.
	protected := api.Group("")
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret)))
	protected.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			Scope:  "video_publish",
			MaxLen: 200,
		},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))
	protected.Use(rl.Handler())
	{
		// Videos
		protected.GET("/videos", h.ListVideos)
		protected.POST("/videos", h.PublishVideo)
		protected.GET("/videos/:videoId", h.GetVideo)
		protected.PATCH("/videos/:videoId", h.UpdateVideo)
		protected.DELETE("/videos/:videoId", h.DeleteVideo)
		protected.PATCH("/videos/:videoId/toggle-publish", h.TogglePublish)

		// Comments
		protected.GET("/comments/:videoId", h.ListComments)
		protected.POST("/comments/:videoId", h.AddComment)
		protected.PATCH("/comments/c/:commentId", h.UpdateComment)
		protected.DELETE("/comments/c/:commentId", h.DeleteComment)

		// Tweets
		protected.POST("/tweets", h.CreateTweet)
		protected.GET("/tweets/user/:userId", h.ListUserTweets)
		protected.PATCH("/tweets/:tweetId", h.UpdateTweet)
		protected.DELETE("/tweets/:tweetId", h.DeleteTweet)

		// Likes
		protected.POST("/likes/toggle/v/:videoId", h.ToggleVideoLike)
		protected.POST("/likes/toggle/c/:commentId", h.ToggleCommentLike)
		protected.POST("/likes/toggle/t/:tweetId", h.ToggleTweetLike)
		protected.GET("/likes/videos", h.ListLikedVideos)

		// Playlists
		protected.POST("/playlists", h.CreatePlaylist)
		protected.GET("/playlists", h.ListMyPlaylists)
		protected.GET("/playlists/user/:userId", h.ListUserPlaylists)
		protected.GET("/playlists/:playlistId", h.GetPlaylist)
		protected.PATCH("/playlists/:playlistId", h.UpdatePlaylist)
		protected.DELETE("/playlists/:playlistId", h.DeletePlaylist)
		protected.PATCH("/playlists/:playlistId/videos/:videoId", h.AddPlaylistVideo)
		protected.DELETE("/playlists/:playlistId/videos/:videoId", h.RemovePlaylistVideo)

		// Subscriptions
		protected.POST("/subscriptions/:channelId", h.ToggleSubscription)
		protected.GET("/subscriptions/subscribed", h.ListSubscribedChannels)
		protected.GET("/subscriptions/:channelId/subscribers", h.ListChannelSubscribers)

		// Dashboard
		protected.GET("/dashboard/:channelId/stats", h.GetChannelStats)
		protected.GET("/dashboard/:channelId/videos", h.ListChannelVideos)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
