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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/metrics"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/store"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if p, _ := cmd.Flags().GetString("port"); p != "" {
			cfg.Port = p
		}

		vocab, err := loadVocabulary(cfg)
		if err != nil {
			log.Error().Err(err).Msg("failed to load word list")
			return err
		}
		st, closeStore, err := openStore(cmd.Context(), cfg)
		if err != nil {
			log.Error().Err(err).Str("store", cfg.Store).Msg("failed to open store")
			return err
		}
		defer closeStore()

		srv := httpserver.New(httpserver.Options{
			Store:        st,
			Dealer:       game.NewDealer(vocab, words.NewSource()),
			Metrics:      metrics.New(),
			TokenSecret:  cfg.JWTSecret,
			TokenTTL:     cfg.SessionTTL,
			DailySalt:    cfg.DailySalt,
			ClientOrigin: cfg.ClientOrigin,
		})
		return listen(":"+cfg.Port, srv.Handler())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (default PORT or 5175)")
}

// openStore builds the configured session store and its cleanup func.
func openStore(ctx context.Context, c config.Config) (store.Store, func(), error) {
	switch c.Store {
	case config.StoreRedis:
		rs := store.NewRedisStore(c.RedisAddr, c.RedisPassword, c.RedisDB, store.WithTTL(c.SessionTTL))
		if ctx == nil {
			ctx = context.Background()
		}
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", c.RedisAddr, err)
		}
		return rs, func() { _ = rs.Close() }, nil
	case config.StoreSQLite:
		ss, err := store.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return ss, func() { _ = ss.Close() }, nil
	}
	return store.NewMemoryStore(), func() {}, nil
}

// listen serves until SIGINT/SIGTERM, then drains in-flight requests.
func listen(addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting wordle server")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown did not complete")
			return srv.Close()
		}
		return nil
	}
}
