package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// loadErrs collects config loading problems until the logger exists to report them.
var loadErrs []error

var defaults = map[string]interface{}{
	"server.port":                "8080",
	"server.read_header_timeout": "15s",
	"server.read_timeout":        "15s",
	"server.write_timeout":       "10s",
	"server.idle_timeout":        "30s",
	"server.shutdown_timeout":    "10s",
	"weatherstack.api_url":       "http://api.weatherstack.com",
	"view.api_base_url":          "",
	"log.level":                  "info",
	"log.development":            true,
}

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		for k, v := range defaults {
			viper.SetDefault(k, v)
		}
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
		_ = viper.BindEnv("server.port", "SERVER_PORT", "PORT")

		root, err := getProjectRoot()
		if err != nil {
			loadErrs = append(loadErrs, err)
			return
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			loadErrs = append(loadErrs, err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			if err = viper.MergeInConfig(); err != nil {
				loadErrs = append(loadErrs, err)
			}
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// GetWeatherstackAPIURL returns the provider base URL, without the /current path.
func GetWeatherstackAPIURL() string {
	initConfig()
	return strings.TrimRight(viper.GetString("weatherstack.api_url"), "/")
}

// GetWeatherstackAPIKey returns the provider access key. An empty key is not
// rejected here; the provider reports it as an authentication failure.
func GetWeatherstackAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("WEATHERSTACK_API_KEY")
}

func GetServerPort() string {
	initConfig()
	return viper.GetString("server.port")
}

// GetServerTimeout returns server.<key> as a duration, falling back to the
// built-in default when the configured value does not parse.
func GetServerTimeout(key string) time.Duration {
	initConfig()
	if d, err := time.ParseDuration(viper.GetString("server." + key)); err == nil {
		return d
	}
	if s, ok := defaults["server."+key].(string); ok {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 0
}

// GetViewAPIBaseURL returns the base URL the page uses to reach the proxy
// endpoint. Defaults to this server on localhost.
func GetViewAPIBaseURL() string {
	initConfig()
	if u := viper.GetString("view.api_base_url"); u != "" {
		return strings.TrimRight(u, "/")
	}
	return "http://localhost:" + GetServerPort()
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	loadErrs = nil
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	initConfig()
	loggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		if viper.GetBool("log.development") {
			cfg = zap.NewDevelopmentConfig()
		}
		if lvl, err := zap.ParseAtomicLevel(viper.GetString("log.level")); err == nil {
			cfg.Level = lvl
		}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
		for _, err := range loadErrs {
			logger.Warnw("Error reading config", "error", err)
		}
	})
	return logger
}
