package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	csvstream_adapter "github.com/JoeShih716/go-payments-engine/internal/app/engine/adapter/in/csvstream"
	"github.com/JoeShih716/go-payments-engine/internal/app/engine/adapter/out/csvreport"
	memory_adapter "github.com/JoeShih716/go-payments-engine/internal/app/engine/adapter/out/memory"
	"github.com/JoeShih716/go-payments-engine/internal/app/engine/usecase"
	"github.com/JoeShih716/go-payments-engine/pkg/journal"
	"github.com/JoeShih716/go-payments-engine/pkg/logging"
)

type Config struct {
	Log     logging.Config `yaml:"log"`
	Journal journal.Config `yaml:"journal"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <transactions.csv>", os.Args[0])
	}

	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化 Logger (Base Infrastructure)
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 3. 初始化拒絕紀錄 Journal (可選)
	var jnl *journal.Journal
	if cfg.Journal.Path != "" {
		jnl, err = journal.New(cfg.Journal.Path)
		if err != nil {
			logger.Fatal("init rejection journal", zap.Error(err))
		}
		// 程式結束時關閉 Journal
		defer jnl.Close()
	}

	// 4. 初始化引擎與 UseCase
	ledger := memory_adapter.NewMutexLedger(logger, jnl)
	core := usecase.NewEngineUseCase(ledger)

	// 5. 初始化 CSV Adapter (Driving Adapter)
	reader := csvstream_adapter.NewReader(core, logger)

	in, err := os.Open(os.Args[1])
	if err != nil {
		logger.Fatal("open transaction file", zap.Error(err))
	}
	defer in.Close()

	// 6. 單一循序掃描：輸入順序即處理順序
	start := time.Now()
	ctx := context.Background()
	if err := reader.Run(ctx, in); err != nil {
		logger.Fatal("process transaction stream", zap.Error(err))
	}

	// 7. 輸出帳戶快照到 stdout
	snapshot, err := core.Snapshot(ctx)
	if err != nil {
		logger.Fatal("load account snapshot", zap.Error(err))
	}
	if err := csvreport.Write(os.Stdout, snapshot); err != nil {
		logger.Fatal("write account snapshot", zap.Error(err))
	}

	report, err := core.Report(ctx)
	if err != nil {
		logger.Fatal("load run report", zap.Error(err))
	}
	logger.Info("run finished",
		zap.Uint64("processed", report.Processed),
		zap.Uint64("rejected", report.Rejected),
		zap.Uint64("malformed_rows", reader.Malformed()),
		zap.Int("accounts", len(snapshot)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func loadConfig() Config {
	// 設定檔是可選的，缺檔時用預設值跑
	cfg := Config{
		Log: logging.Config{Level: "info"},
	}

	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg
		}
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg
}
