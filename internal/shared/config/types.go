package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ContentConfig controls where generator assets and platform profiles
// are resolved from.
type ContentConfig struct {
	// AssetBasePath is prepended to relative logo/background references.
	AssetBasePath string `mapstructure:"asset_base_path"`
	// PlatformsPath points at an optional platforms.yaml overriding the
	// built-in mention-tag and hashtag blocks.
	PlatformsPath string `mapstructure:"platforms_path"`
}
