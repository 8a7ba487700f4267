package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/httpapi"
	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
	"github.com/Mr-Gerald/graceful-path-web/internal/studyplan"
	"github.com/Mr-Gerald/graceful-path-web/internal/tutor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			addr = ":" + port
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()
		sugar := logger.Sugar()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pool, err := buildPool(ctx, st, cfg)
		if err != nil {
			return err
		}

		genProvider, err := llm.NewProvider(cfg, pool, st.Events())
		if err != nil {
			return err
		}
		chatProvider, err := llm.NewChatProvider(cfg, pool, st.Events())
		if err != nil {
			return err
		}

		server := httpapi.NewServer(httpapi.Config{
			Tests:  st.Tests(),
			Keys:   st.Keys(),
			Events: st.Events(),
			Pool:   pool,
			Quiz:   quizgen.NewService(quizgen.NewGenerator(genProvider, quizgen.DefaultConfig())),
			Tutor:  tutor.New(chatProvider),
			Plans:  studyplan.New(genProvider),
			Logger: sugar,
		})

		srv := &http.Server{
			Addr:              addr,
			Handler:           server.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			sugar.Infow("server listening", "addr", addr, "provider", cfg.Provider)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			sugar.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

// buildPool seeds the credential pool from the key store. A store with no
// active keys falls back to the provider's standard env vars, persisting
// them so a fresh checkout works with nothing but an API key exported.
func buildPool(ctx context.Context, st *content.Store, cfg llm.Config) (*keypool.Pool, error) {
	secrets, err := st.Keys().ActiveSecrets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load API keys: %w", err)
	}
	if len(secrets) == 0 {
		for _, k := range cfg.EnvKeys() {
			if _, err := st.Keys().Add(ctx, "env", k); err != nil {
				return nil, fmt.Errorf("seed API key: %w", err)
			}
			secrets = append(secrets, k)
		}
	}
	if len(secrets) == 0 {
		fmt.Fprintln(os.Stderr, "No API keys configured; AI features will be unavailable.")
		fmt.Fprintln(os.Stderr, "Add one with `graceful keys add` or export the provider's API key env var.")
	}
	return keypool.New(secrets), nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (defaults to :$PORT or :8080)")
}
