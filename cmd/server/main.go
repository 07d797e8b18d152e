// Command server exposes the Russian word calculator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/evaluate?expr=<expression>
//	POST /api/evaluate   body: {"expression":"..."}
//	GET  /api/tokens?expr=<expression>
//	GET  /api/lexicon
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cours-de-latin/rucalc"
	"github.com/cours-de-latin/rucalc/internal/config"
	"github.com/cours-de-latin/rucalc/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// newCalculator builds the calculator from the configured lexicon.
func newCalculator(cfg *config.Config, log *zap.Logger) (*rucalc.Calculator, error) {
	opts := []rucalc.Option{rucalc.WithLogger(log.Named("calc"))}
	if cfg.Lexicon.Path != "" {
		lx, err := rucalc.LoadLexicon(cfg.Lexicon.Path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rucalc.WithLexicon(lx))
	}
	return rucalc.New(opts...), nil
}

// newHandler wires the API routes behind CORS and request logging.
func newHandler(calc *rucalc.Calculator, cfg *config.Config, log *zap.Logger) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return logRequests(log, c.Handler(newMux(calc, log)))
}

func run(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	calc, err := newCalculator(cfg, log)
	if err != nil {
		return err
	}
	log.Info("lexicon loaded",
		zap.String("path", cfg.Lexicon.Path),
		zap.Int("entries", len(calc.Lexicon().Entries())))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHandler(calc, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "server")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve the Russian word calculator over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, v)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a TOML config file")
	flags.String("addr", "", "listen address (default :8080)")
	flags.String("lexicon", "", "path to a YAML lexicon (default: embedded)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	_ = v.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = v.BindPFlag("lexicon.path", flags.Lookup("lexicon"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
