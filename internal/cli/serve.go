package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SyzBeats/GraphQL-Blog/internal/config"
	"github.com/SyzBeats/GraphQL-Blog/internal/engine"
	gql "github.com/SyzBeats/GraphQL-Blog/internal/graphql"
	"github.com/SyzBeats/GraphQL-Blog/internal/pubsub"
	"github.com/SyzBeats/GraphQL-Blog/internal/resolve"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

const shutdownGrace = 5 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
	Seed string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the GraphQL server",
		Long: `Start the GraphQL server with an in-memory store.

The store is populated from a YAML seed file (or the embedded default)
and lives only for the lifetime of the process.

Example:
  graphql-blog serve
  graphql-blog serve --addr :8080 --seed ./fixtures/blog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&opts.Seed, "seed", "", "path to YAML seed file (overrides config)")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.Seed != "" {
		cfg.SeedFile = opts.Seed
	}

	logLevel := slog.LevelInfo
	if opts.Verbose || cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// The store handle is owned here and injected everywhere; no package
	// holds global mutable state.
	st := store.New()
	seed := store.DefaultSeed()
	if cfg.SeedFile != "" {
		if seed, err = store.LoadSeedFile(cfg.SeedFile); err != nil {
			return err
		}
		logger.Info("seed loaded", "path", cfg.SeedFile)
	}
	st.Load(seed)
	logger.Info("store seeded",
		"users", len(seed.Users),
		"posts", len(seed.Posts),
		"comments", len(seed.Comments))

	hub := pubsub.NewHub()
	eng := engine.New(st, hub)
	res := resolve.New(st)

	schema, err := gql.NewSchema(res, eng)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: gql.NewRouter(schema, eng, logger),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
