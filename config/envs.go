package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the engine's process-wide configuration values. Every
// field is sourced from the environment, never from a file the engine
// itself parses.
type Config struct {
	HostIP        string // address the HTTP listener binds to
	RESTPort      int    // port the HTTP listener binds to
	GinMode       string // gin.Mode: release, debug, or test
	LogLevel      string // zerolog level name: debug, info, warn, error
	BoardSource   string // path to the plain-text board file loaded at startup
	WatchTimeout  int    // seconds a blocked watch waits before the handler gives up
	FlipTimeout   int    // seconds a blocked flip waits before the handler gives up
}

// Envs holds the configuration loaded once at process startup.
var Envs = initConfig()

func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:       getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:     mustGetEnvAsInt("REST_PORT"),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		BoardSource:  mustGetEnv("BOARD_SOURCE"),
		WatchTimeout: getEnvAsIntWithDefault("WATCH_TIMEOUT_SECONDS", 30),
		FlipTimeout:  getEnvAsIntWithDefault("FLIP_TIMEOUT_SECONDS", 30),
	}
}

func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[CONFIG] [FATAL] environment variable %s is not set", key)
	}
	return value
}

func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[CONFIG] [FATAL] environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[CONFIG] [FATAL] environment variable %s must be an integer: %v", key, err)
	}
	return value
}
