package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/learnpath/internal/cli"
	"github.com/alexanderramin/learnpath/internal/config"
	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/repository"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()

	// Restore the saved user, plans and current plan
	session, err := service.LoadSession(ctx, repository.NewSQLiteStateRepo(database))
	if err != nil {
		return fmt.Errorf("loading saved state: %w", err)
	}

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.ObserverFor(cfg.LogUseCases, os.Stderr)

	app := &cli.App{
		Auth:              service.NewAuthService(session, uow, observer),
		Plans:             service.NewPlanService(session, uow, observer),
		Quizzes:           service.NewQuizService(session, repository.NewSQLiteQuizAttemptRepo(database), uow, cfg.QuizTimeLimit, observer),
		Dashboard:         service.NewDashboardService(session),
		DefaultDifficulty: cfg.DefaultDifficulty,
	}

	// Forms and the quiz runner need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
