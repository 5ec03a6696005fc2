package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Difficulty string // Initial difficulty level name (easy, medium, hard, expert)
	Timer      bool   // Whether new games start with the countdown enabled
	Seed       uint64 // Seed for maze generation; 0 derives one from the clock
	TickMillis int    // Countdown tick period in milliseconds
	LogFile    string // File that receives logs while the terminal UI owns the screen
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Difficulty: getEnvWithDefault("MAZE_DIFFICULTY", "easy"),
		Timer:      getEnvAsBoolWithDefault("MAZE_TIMER", false),
		Seed:       getEnvAsUintWithDefault("MAZE_SEED", 0),
		TickMillis: getEnvAsIntWithDefault("MAZE_TICK_MILLIS", 1000),
		LogFile:    getEnvWithDefault("MAZE_LOG_FILE", ""),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, logging a fatal error if it is malformed or not positive.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a positive integer: %q", key, valueStr)
	}
	return value
}

func getEnvAsUintWithDefault(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an unsigned integer: %v", key, err)
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
