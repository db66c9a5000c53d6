package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "highwaybus/internal/config"
	intdb "highwaybus/internal/db"
	router "highwaybus/internal/http"
	"highwaybus/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "highwaybus",
		Usage: "Highway bus timetable API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen address, overrides APP_ADDR",
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create missing tables",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func setup() (intconfig.Env, error) {
	env, err := intconfig.LoadEnv()
	if err != nil {
		return env, err
	}
	setupLogging(env)
	return env, nil
}

func setupLogging(env intconfig.Env) {
	if env.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

func migrate(c *cli.Context) error {
	env, err := setup()
	if err != nil {
		return err
	}
	db, err := intconfig.ConnectDB(env.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer intconfig.CloseDB()

	if err := intdb.Migrate(c.Context, db); err != nil {
		return err
	}
	log.Info().Strs("tables", intdb.Tables).Msg("Schema up to date")
	return nil
}

func serve(c *cli.Context) error {
	env, err := setup()
	if err != nil {
		return err
	}
	if listen := c.String("listen"); listen != "" {
		env.AppAddr = listen
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	if _, err := intconfig.ConnectDB(env.DatabaseDSN); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer intconfig.CloseDB()

	if err := intconfig.ConnectRedis(env); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, location cache disabled")
	}
	defer intconfig.CloseRedis()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(env.SessionTTL)
	go store.Run(ctx, time.Minute)

	r := router.NewRouter(env, store, session.NewIssuer(env.SessionSecret, env.SessionTTL))

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", env.AppAddr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info().Msg("Server stopped cleanly.")
	return nil
}
