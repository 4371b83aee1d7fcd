// internal/middleware/middleware.go
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// SetupGlobalMiddleware registers the standard middleware chain. Registration
// order matters: recover first, compression last.
func SetupGlobalMiddleware(app *fiber.App) {
	// Catch panics from handlers so the server keeps running.
	app.Use(recover.New())
	zlog.Info().Msg("Recover middleware registered")

	// X-Request-ID header + c.Locals("requestid") for log correlation.
	app.Use(requestid.New())
	zlog.Info().Msg("RequestID middleware registered")

	app.Use(cors.New(cors.Config{
		// Replace with the deployed frontend origins in production.
		AllowOrigins: "http://localhost:3000, http://127.0.0.1:3000, http://localhost:5173",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
	}))
	zlog.Info().Msg("CORS middleware registered")

	app.Use(limiter.New(limiter.Config{
		Max:               200,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))
	zlog.Info().Msg("Rate limiter middleware registered")

	// Request logger built on the global zerolog logger.
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		stop := time.Now()
		latency := stop.Sub(start)
		statusCode := c.Response().StatusCode()

		requestIDInterface := c.Locals("requestid")
		requestID := ""
		if requestIDInterface != nil {
			if idStr, ok := requestIDInterface.(string); ok {
				requestID = idStr
			}
		}

		var logEvent *zerolog.Event
		if err != nil {
			logEvent = zlog.Warn().Err(err)
		} else {
			logEvent = zlog.Info()
			if statusCode >= 500 {
				logEvent = zlog.Error()
			} else if statusCode >= 400 {
				logEvent = zlog.Warn()
			}
		}

		loggerWithFields := logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent))

		if requestID != "" {
			loggerWithFields = loggerWithFields.Str("request_id", requestID)
		}

		loggerWithFields.Msg("Request handled")

		// Hand the error on to the global ErrorHandler.
		return err
	})
	zlog.Info().Msg("Request logger middleware registered")

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	zlog.Info().Msg("Compress middleware registered")
}
