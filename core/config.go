package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		AppName      string
		RollbarToken string
		Server       ServerConfig
		Store        StoreConfig
	}

	ServerConfig struct {
		Host            string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	StoreConfig struct {
		// Latency is waited by every repository call before it touches the store.
		Latency time.Duration
		Seed    bool
	}
)

// NewConfig reads the configuration from the environment (optionally preloaded from `config/.env.<env>`).
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("test_mode", false)
	v.SetDefault("app_name", "FeeFlow")
	v.SetDefault("rollbar_token", "")
	v.SetDefault("server.host", ":8080")
	v.SetDefault("server.debug_host", ":4000")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.disable_request_logs", false)
	v.SetDefault("store.latency", 300*time.Millisecond)
	v.SetDefault("store.seed", true)

	env := strings.ToLower(os.Getenv("ENV")) // dev (local; default), test, qa, prod
	switch env {
	case "":
		env = "dev"
	case "test":
		v.SetDefault("test_mode", true)
		v.SetDefault("store.latency", time.Duration(0))
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	v.SetEnvPrefix("feeflow")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("test_mode"),
		AppName:      v.GetString("app_name"),
		RollbarToken: v.GetString("rollbar_token"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debug_host"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			DisableReqLogs:  v.GetBool("server.disable_request_logs"),
		},
		Store: StoreConfig{
			Latency: v.GetDuration("store.latency"),
			Seed:    v.GetBool("store.seed"),
		},
	}
}
