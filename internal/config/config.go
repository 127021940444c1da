package config

import (
	"os"
	"time"
)

type Config struct {
	RemoteURL     string
	RemoteAPIKey  string
	DataDir       string
	ListenAddr    string
	LogLevel      string
	SyncInterval  time.Duration
	ProbeInterval time.Duration
}

func New() *Config {
	return &Config{
		RemoteURL:     os.Getenv("REMOTEURL"),
		RemoteAPIKey:  os.Getenv("REMOTEAPIKEY"),
		DataDir:       getEnv("DATADIR", "data"),
		ListenAddr:    getEnv("LISTENADDR", ":8080"),
		LogLevel:      os.Getenv("LOGLEVEL"),
		SyncInterval:  getDuration("SYNCINTERVAL", 5*time.Minute),
		ProbeInterval: getDuration("PROBEINTERVAL", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
