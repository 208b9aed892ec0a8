package main // Entry point package

import (
	"log"      // Logging library
	"net/http" // Status codes for the error handler

	"github.com/joho/godotenv" // Loads .env files in development
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/hautdegamme/studio-api/internal/config"
	"github.com/hautdegamme/studio-api/internal/handler"
	"github.com/hautdegamme/studio-api/internal/middleware"
	"github.com/hautdegamme/studio-api/internal/queue"
	"github.com/hautdegamme/studio-api/internal/router"
	"github.com/hautdegamme/studio-api/internal/store"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()
	cfg := config.Load()

	// All records live in process memory and reset on restart; the seed
	// recreates the demo catalog and the admin account on boot.
	st := store.New()
	st.Seed()

	// Redis is optional.  Without it the rate limiter and the response
	// cache become pass-through middleware.
	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Unexpected failures answer a stable generic body; details go to
	// the log only.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			_ = c.JSON(he.Code, echo.Map{"error": http.StatusText(he.Code)})
			return
		}
		log.Printf("unhandled error: %v (%s %s)", err, c.Request().Method, c.Request().URL.Path)
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	h := handler.New(st, cfg)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, h, cfg.JWTSecret)
	router.RegisterPublic(e, h, cache)
	router.RegisterAdmin(e, h, cfg.JWTSecret)
	router.RegisterFallback(e, handler.SPA{Dir: cfg.StaticDir})

	// The consumer keeps its own reconnect loop and never takes the
	// server down with it.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
