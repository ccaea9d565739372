package config

import "time"

type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetBaseURL() string
	GetTimeout() time.Duration
	GetAppName() string
	GetSessionFile() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
