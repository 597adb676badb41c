// pipelineboard 门店拓展进度看板：HTTP 服务与命令行工具
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pipelineboard/internal/config"
	"pipelineboard/internal/importer"
	"pipelineboard/internal/ingest"
	"pipelineboard/internal/logging"
	"pipelineboard/internal/store"
)

var (
	// 全局参数
	configPath string
	logLevel   string
	dataDir    string

	cfg    *config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pipelineboard",
	Short: "Store expansion pipeline dashboard",
	Long: `pipelineboard tracks retail store openings across brands and regions.

Run without arguments (or "pipelineboard serve") to start the dashboard API,
or use the import/export/report subcommands to work with the local database directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径 (默认: 可执行文件同目录 config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (覆盖配置文件)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "数据目录 (覆盖配置文件)")

	rootCmd.AddCommand(serveCmd, importCmd, exportCmd, reportCmd, initConfigCmd)
}

// setup 加载配置并初始化日志；命令行参数覆盖配置文件
func setup() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, _, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if dataDir != "" {
		loaded.Data.DataDir = dataDir
	}
	cfg = loaded

	logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// openStore 打开本地数据库；空库时写入配置的数据集
func openStore() (*store.Store, *ingest.Dataset, error) {
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}
	st, err := store.New(config.DBPath(dir))
	if err != nil {
		return nil, nil, err
	}
	dataset, err := ingest.LoadDataset(cfg.Data.SeedPath)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if err := importer.SeedIfEmpty(st, dataset, ingest.DatasetSource(cfg.Data.SeedPath), logger); err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, dataset, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
