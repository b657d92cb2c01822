package routers

import (
	"kinovzor/config"
	"kinovzor/middleware"
	"kinovzor/routers/healthRoutes"
	"kinovzor/routers/movieRoutes"
	"kinovzor/routers/userRoutes"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application with middleware, API routes and static assets.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "kinovzor",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	api := app.Group("/api")
	healthRoutes.SetupHealthRoutes(api)
	userRoutes.SetupUserRoutes(api)
	movieRoutes.SetupMovieRoutes(api)

	// Serve the frontend; other non-API paths get index.html
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)

		index := filepath.Join(cfg.StaticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			app.Get("/*", func(c *fiber.Ctx) error {
				if strings.HasPrefix(c.Path(), "/api") {
					return fiber.ErrNotFound
				}
				return c.SendFile(index)
			})
		}
	}

	return app
}

// Serve runs app on ln until stop is closed, then waits up to timeout for
// in-flight requests before returning.
func Serve(app *fiber.App, ln net.Listener, stop <-chan struct{}, timeout time.Duration) error {
	drained := make(chan error, 1)
	go func() {
		<-stop
		drained <- app.ShutdownWithTimeout(timeout)
	}()

	if err := app.Listener(ln); err != nil {
		return err
	}
	return <-drained
}
