package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig 进程级配置，来自 BIRTHDAY24_* 环境变量
// 命令行参数在 main 中覆盖这里的值
type EnvConfig struct {
	ContentPath    string `env:"BIRTHDAY24_CONTENT"         envDefault:"data/content.yaml"`
	AssetsDir      string `env:"BIRTHDAY24_ASSETS"          envDefault:"."`
	FontPath       string `env:"BIRTHDAY24_FONT"`
	Verbose        bool   `env:"BIRTHDAY24_VERBOSE"`
	ReducedEffects bool   `env:"BIRTHDAY24_REDUCED_EFFECTS"`
	Muted          bool   `env:"BIRTHDAY24_MUTED"`
	Seed           int64  `env:"BIRTHDAY24_SEED"` // 0 表示使用当前时间
}

// ParseEnv 把环境变量解析到 target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvConfig 读取 EnvConfig
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
