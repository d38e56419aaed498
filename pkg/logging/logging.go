package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Config 日誌設定
type Config struct {
	// Level: debug / info / warn / error
	Level string `yaml:"level"`
	// Development: true 時輸出人類可讀格式
	Development bool `yaml:"development"`
}

// New 依設定建立 zap.Logger
// 一律輸出到 stderr，stdout 保留給帳戶快照
func New(cfg Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
