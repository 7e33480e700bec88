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
	serverConfig struct {
		Address         string
		DebugHost       string
		Host            string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	gradingConfig struct {
		PassThreshold float64
		LoadSeed      bool
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		WorkDir      string
		RollbarToken string
		Server       serverConfig
		Grading      gradingConfig
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Gradebook")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverDebugHost", ":4000")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("serverDisableReqLogs", false)
	conf.SetDefault("gradingPassThreshold", 60.0)
	conf.SetDefault("gradingLoadSeed", true)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        conf.GetString("build"),
		AppName:      conf.GetString("appName"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		WorkDir:      wd,
		RollbarToken: conf.GetString("rollbarToken"),
		Server: serverConfig{
			Address:         conf.GetString("serverAddress"),
			DebugHost:       conf.GetString("serverDebugHost"),
			Host:            conf.GetString("serverHost"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
			DisableReqLogs:  conf.GetBool("serverDisableReqLogs"),
		},
		Grading: gradingConfig{
			PassThreshold: conf.GetFloat64("gradingPassThreshold"),
			LoadSeed:      conf.GetBool("gradingLoadSeed"),
		},
	}
}

// NewTestConfig returns a quiet Config for tests; no environment is read.
func NewTestConfig() *Config {
	return &Config{
		Env:      "TEST",
		Build:    "test",
		AppName:  "Gradebook",
		TestMode: true,
		Server: serverConfig{
			ShutdownTimeout: time.Second,
			DisableReqLogs:  true,
		},
		Grading: gradingConfig{
			PassThreshold: 60,
			LoadSeed:      true,
		},
	}
}
