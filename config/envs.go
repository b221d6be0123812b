package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Modes select the session driver.
const (
	ModePlay  = "play"  // Manual play on the console
	ModeWatch = "watch" // Solver animation on the console
	ModeServe = "serve" // HTTP API
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	MazeHeight   int    // Number of maze rows
	MazeWidth    int    // Number of maze columns
	MazeSeed     int64  // Seed for maze generation; 0 picks one from the clock
	Breadcrumbs  bool   // Whether the breadcrumb trail is shown initially
	Mode         string // One of ModePlay, ModeWatch, ModeServe
	WatchDelayMs int    // Pause between solver steps in watch mode
	HostIP       string // Host IP for the server
	RESTPort     int    // Port for the REST API
	GinMode      string // Mode for the Gin framework (e.g., release, debug, test)
}

// Load reads the configuration from the environment, after loading a .env
// file if one is available. Invalid values are reported, never clamped.
func Load() (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return fromEnv()
}

func fromEnv() (Config, error) {
	var (
		c    Config
		errs []error
	)

	c.MazeHeight, errs = getEnvAsInt("MAZE_HEIGHT", 10, errs)
	c.MazeWidth, errs = getEnvAsInt("MAZE_WIDTH", 20, errs)
	seed, errs := getEnvAsInt("MAZE_SEED", 0, errs)
	c.MazeSeed = int64(seed)
	c.WatchDelayMs, errs = getEnvAsInt("WATCH_DELAY_MS", 20, errs)
	c.RESTPort, errs = getEnvAsInt("REST_PORT", 8080, errs)
	c.Breadcrumbs, errs = getEnvAsBool("BREADCRUMBS", false, errs)
	c.Mode = strings.ToLower(getEnvWithDefault("MODE", ModePlay))
	c.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	c.GinMode = getEnvWithDefault("GIN_MODE", "release")

	if c.MazeHeight <= 0 || c.MazeWidth <= 0 {
		errs = append(errs, fmt.Errorf("MAZE_HEIGHT and MAZE_WIDTH must be positive, got %dx%d", c.MazeHeight, c.MazeWidth))
	}
	if c.WatchDelayMs < 0 {
		errs = append(errs, fmt.Errorf("WATCH_DELAY_MS must not be negative, got %d", c.WatchDelayMs))
	}
	switch c.Mode {
	case ModePlay, ModeWatch, ModeServe:
	default:
		errs = append(errs, fmt.Errorf("unknown MODE %q", c.Mode))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown GIN_MODE %q", c.GinMode))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return c, nil
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set.
// A value that cannot be parsed is appended to errs.
func getEnvAsInt(key string, defaultValue int, errs []error) (int, []error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, errs
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue, append(errs, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
	}
	return value, errs
}

// getEnvAsBool retrieves an environment variable as a boolean, or defaultValue if not set.
func getEnvAsBool(key string, defaultValue bool, errs []error) (bool, []error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, errs
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue, append(errs, fmt.Errorf("environment variable %s must be a boolean: %w", key, err))
	}
	return value, errs
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
