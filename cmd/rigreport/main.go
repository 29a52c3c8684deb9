package main

import (
	"fmt"
	"os"

	"rigreport/internal/api"
	"rigreport/internal/cli"
	"rigreport/internal/config"
	"rigreport/internal/logging"
	"rigreport/internal/repository/sqlite"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return 1
	}

	logger, err := logging.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logger:", err)
		return 1
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "Error creating database directory:", err)
		return 1
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing database:", err)
		return 1
	}
	defer repo.Close()

	root := cli.NewRootCommand(api.New(repo, logger), cfg)
	return cli.HandleError(root.Execute())
}
