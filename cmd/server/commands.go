package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/chainnotes/internal/api"
	"github.com/rohits-web03/chainnotes/internal/api/handlers"
	"github.com/rohits-web03/chainnotes/internal/config"
	"github.com/rohits-web03/chainnotes/internal/repositories"
	"github.com/rohits-web03/chainnotes/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the recycle-bin sweeper",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.DB.URL == config.MemoryDB {
			return errors.New("migrate needs a Postgres DB_URL")
		}
		db, err := repositories.Open(cfg.DB.URL)
		if err != nil {
			return err
		}
		if err := repositories.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		log.Info(cmd.Context(), "migrations applied")
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Purge expired recycle-bin notes once and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openStores(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer st.close()

		n, err := services.NewNoteService(st.notes, cfg.Sweep.Retention).ExpireOldDeleted(ctx)
		if err != nil {
			return err
		}
		log.Info(ctx, "sweep finished", "purged", n)
		return nil
	},
}

func serve(parent context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "startup", "config", cfg.String())

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	// Optional collaborators stay nil when unconfigured; the routes that need
	// them answer 503.
	var avatars services.AvatarStore
	if cfg.R2.Enabled() {
		avatars = repositories.NewAvatarStore(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			cfg.R2.AccountID,
			cfg.R2.BucketName,
			cfg.R2.Region,
			cfg.R2.PublicBaseURL,
		)
	}

	var ledger services.Ledger
	if cfg.Ledger.URL != "" {
		eth, err := repositories.DialLedger(ctx, cfg.Ledger.URL)
		if err != nil {
			return err
		}
		defer eth.Close()
		ledger = eth
	}

	var google *services.GoogleProvider
	if cfg.Google.ClientID != "" {
		google = services.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	}

	tokens := services.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	notes := services.NewNoteService(st.notes, cfg.Sweep.Retention)
	users := services.NewUserService(st.users, tokens, avatars)

	h := handlers.New(handlers.Options{
		Notes:         notes,
		Todos:         services.NewTodoService(st.todos),
		Users:         users,
		Blockchain:    services.NewBlockchainService(st.txs, st.notes, st.todos, ledger),
		Google:        google,
		Log:           log,
		FrontendURL:   cfg.FrontendURL,
		SecureCookies: cfg.IsProduction(),
		TokenTTL:      tokens.TTL(),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      api.NewRouter(h, users, log, cfg.CorsOptions()),
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(gctx, "server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		return services.NewSweeper(notes, cfg.Sweep.Interval, log).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutdown started")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
