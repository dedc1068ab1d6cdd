package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/workhub/internal/config"
	"github.com/dropDatabas3/workhub/internal/observability/logger"
)

func main() {
	// .env es opcional, las env del sistema ganan
	_ = godotenv.Load()

	var configPath string

	root := &cobra.Command{
		Use:   "workhub",
		Short: "Servicio de lookup de recursos de workspace y social login",
	}
	root.PersistentFlags().StringVar(&configPath, "config", envOr("WORKHUB_CONFIG", ""), "Path al YAML de configuración (env WORKHUB_CONFIG)")

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
		logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
		return cfg, nil
	}

	root.AddCommand(newServeCmd(loadConfig))
	root.AddCommand(newMigrateCmd(loadConfig))
	root.AddCommand(newSeedCmd(loadConfig))

	// Sin subcomando: servir
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return newServeCmd(loadConfig).RunE(cmd, args)
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
