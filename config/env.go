package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultDatabaseURL  = "mongodb://localhost:27017"
	defaultDatabaseName = "labstore"
	defaultRedisAddr    = "localhost:6379"
	defaultAppPort      = "8000"
	defaultAppEnv       = "local"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads configuration from config/app.json and .env (in that order,
// later sources win) on first call. Process environment variables override
// both, so container deployments need no config files at all.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"DATABASE_URL":   "",
		"DATABASE_NAME":  "",
		"REDIS_ADDR":     defaultRedisAddr,
		"REDIS_PASSWORD": "",
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"LOG_TO_STORE":   "",
	}
}

// DatabaseURL returns the MongoDB connection string.
func DatabaseURL() string {
	_ = Load()
	return get("DATABASE_URL", defaultDatabaseURL)
}

// DatabaseName returns the MongoDB database name.
func DatabaseName() string {
	_ = Load()
	return get("DATABASE_NAME", defaultDatabaseName)
}

// DatabaseURLSet reports whether a connection string was explicitly
// configured rather than falling back to the built-in default.
// Used by the /test diagnostic endpoint.
func DatabaseURLSet() bool {
	_ = Load()
	return get("DATABASE_URL", "") != ""
}

// DatabaseNameSet reports whether a database name was explicitly configured.
func DatabaseNameSet() bool {
	_ = Load()
	return get("DATABASE_NAME", "") != ""
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// LogToStore reports whether application logs should also be written to the
// document store's app_log collection.
func LogToStore() bool {
	_ = Load()
	return strings.EqualFold(get("LOG_TO_STORE", "false"), "true")
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// get returns the configured value for key, preferring the process
// environment over file-sourced values.
func get(key, fallback string) string {
	if env := strings.TrimSpace(os.Getenv(key)); env != "" {
		return env
	}

	mu.RLock()
	v := strings.TrimSpace(values[key])
	mu.RUnlock()

	if v != "" {
		return v
	}
	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
