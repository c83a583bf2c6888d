package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	middleware "task-manager.com/task-manager/internal/http/middlewares"
)

const APIPrefix = "/api/v1"

type Options struct {
	Limiter          middleware.Limiter
	CORSAllowOrigins []string
	LogLevel         string
}

// NewServer builds the echo instance with the shared middleware chain and
// every route registered.
func NewServer(h *Handler, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Logger.SetLevel(logLevel(opts.LogLevel))

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			c.Logger().Infof("%s %s %d %s request_id=%s", v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond), v.RequestID)
			return nil
		},
	}))
	if len(opts.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: opts.CORSAllowOrigins,
		}))
	}
	e.Use(echomw.BodyLimit("1M"))
	if opts.Limiter != nil {
		e.Use(middleware.RateLimiter(opts.Limiter))
	}

	Register(e, h)
	return e
}

func Register(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)

	api := e.Group(APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	requireUser := middleware.BearerAuth(h.authService)

	users := api.Group("/users", requireUser)
	users.GET("", h.ListUsers)
	users.GET("/profile", h.Profile)
	users.DELETE("/:id", h.DeleteUser)

	tasks := api.Group("/task", requireUser)
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.PATCH("/status/:id", h.ChangeTaskStatus)
	tasks.PATCH("/assign/:id", h.AssignTaskUser)
	tasks.DELETE("/:id", h.DeleteTask)
}

func logLevel(level string) log.Lvl {
	switch level {
	case "DEBUG":
		return log.DEBUG
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}
