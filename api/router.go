package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/i"
	si "github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	logger      si.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Logger      si.Logger // Request log; nil disables it
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      config.Logger,
	}
}

// Handler builds the gin engine with every controller mounted under
// <baseURL>/v1.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	if r.logger != nil {
		router.Use(requestLogger(r.logger))
	}
	router.Use(gin.Recovery())

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(l si.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		msg := fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			l.Error(msg)
		case status >= http.StatusBadRequest:
			l.Warn(msg)
		default:
			l.Info(msg)
		}
	}
}
