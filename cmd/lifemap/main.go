package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/lifemap/internal/cli"
	"github.com/alexanderramin/lifemap/internal/config"
	"github.com/alexanderramin/lifemap/internal/db"
	"github.com/alexanderramin/lifemap/internal/repository"
	"github.com/alexanderramin/lifemap/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Timelines: service.NewTimelineService(
			repository.NewSQLiteTimelineRepo(database),
			repository.NewSQLiteGoalRepo(database),
			db.NewSQLiteUnitOfWork(database),
			observers...,
		),
		Config: cfg,
	}

	// Prompts and the canvas editor need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
