package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"notesvc/internal/api"
	"notesvc/internal/config"
	"notesvc/internal/repository"
	"notesvc/internal/repository/migrations"
	"notesvc/internal/usecase/auth"
	"notesvc/internal/usecase/notes"
	"notesvc/pkg/database"
	"notesvc/pkg/gwserver"
	"notesvc/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	if err := migrations.Run(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("run migrations: %v", err)
	}

	manager, err := database.NewManager(database.NewOptions(
		cfg.Database.Addr(),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithPoolSize(cfg.Database.PoolSize),
		database.WithAcquireTimeout(cfg.Database.AcquireTimeout),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init pool manager: %v", err)
	}
	defer manager.Shutdown()

	db := database.NewDatabase(manager)
	repo := repository.New(db)

	authUsecase, err := auth.New(auth.NewOptions(repo))
	if err != nil {
		return fmt.Errorf("init auth usecase: %v", err)
	}

	notesUsecase, err := notes.New(notes.NewOptions(repo, db))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	router := api.NewRouter(api.NewHandler(authUsecase, notesUsecase))

	srv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		router,
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
