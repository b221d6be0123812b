package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/console"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	cfg                config.Config
	appLogger          i.Logger
	gameSessionManager *service.GameSessionManager
	gameController     api_i.Controller
	router             *api.Router
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading config: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Config loaded: mode=%s maze=%dx%d", cfg.Mode, cfg.MazeHeight, cfg.MazeWidth))
}

// newGame builds the single game played on the console.
func newGame() *game.Game {
	m, err := maze.New(cfg.MazeHeight, cfg.MazeWidth)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze: %v", err))
		os.Exit(1)
	}

	g, err := game.New(m, game.WithRand(maze.NewRand(cfg.MazeSeed)), game.WithBreadcrumbs(cfg.Breadcrumbs))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Game ready: start %s, exit %s", g.Player(), g.End()))
	return g
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		MazeFactory:   maze.New,
		RandFactory:   func() *rand.Rand { return maze.NewRand(cfg.MazeSeed) },
		DefaultHeight: cfg.MazeHeight,
		DefaultWidth:  cfg.MazeWidth,
		Logger:        sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initGameController() {
	var err error
	gameController, err = gameapi.NewGameController(gameSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game controller initialized")
}

func initRouter() {
	httpLogger, err := logger.New("HTTP", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating http logger: %v", err))
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{gameController},
		Logger:      httpLogger,
	})
	appLogger.Info("Router initialized")
}

func serve(ctx context.Context) {
	initSessionManager()
	defer gameSessionManager.StopAll()
	initGameController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Serving on %s:%d", cfg.HostIP, cfg.RESTPort))
	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Running server: %v", err))
		return
	}
	appLogger.Info("Server stopped")
}

func play() {
	won, err := console.Play(newGame(), os.Stdin, os.Stdout)
	report(won, err)
}

func watch() {
	won, err := console.Watch(newGame(), os.Stdout, time.Duration(cfg.WatchDelayMs)*time.Millisecond)
	report(won, err)
}

func report(won bool, err error) {
	switch {
	case errors.Is(err, game.ErrPlayerOutsideMaze):
		appLogger.Error(fmt.Sprintf("Game state corrupted: %v", err))
		os.Exit(1)
	case err != nil:
		appLogger.Error(fmt.Sprintf("Session failed: %v", err))
		os.Exit(1)
	case won:
		appLogger.Info("Maze solved")
	default:
		appLogger.Info("Session ended without reaching the exit")
	}
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initConfig()

	switch cfg.Mode {
	case config.ModeServe:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		serve(ctx)
	case config.ModeWatch:
		watch()
	default:
		play()
	}
}
