/*
main.go - Application entry point

PURPOSE:
  The strata binary exposes two commands:

    strata frequency <text>   Parse a frequency and print what it means
    strata serve              Run the HTTP API server

CONFIGURATION:
  serve reads an optional TOML config file (--config), then applies
  flag overrides:

    port = 8080
    db = "strata.db"
    log_level = "info"

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the server stops accepting connections, waits up to
  30s for active requests, then closes the database.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/todatamining/strata/api"
	"github.com/todatamining/strata/schedule"
	"github.com/todatamining/strata/store/sqlite"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

type config struct {
	Port     int    `toml:"port"`
	DBPath   string `toml:"db"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{Port: 8080, DBPath: "strata.db", LogLevel: "info"}
}

// loadFileConfig merges a TOML config file into cfg, leaving fields the
// file does not mention at their current values.
func loadFileConfig(path string, cfg *config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, cfg)
}

func main() {
	root := &cobra.Command{
		Use:           "strata",
		Short:         "Periodic frequency and market data fixture tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFrequencyCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// =============================================================================
// FREQUENCY COMMAND
// =============================================================================

func newFrequencyCmd() *cobra.Command {
	var shiftDate string

	cmd := &cobra.Command{
		Use:   "frequency <text>",
		Short: "Parse a frequency such as P3M, 2W or Term and describe it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schedule.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := f.Period()
			fmt.Fprintf(out, "frequency:  %s\n", f)
			fmt.Fprintf(out, "period:     %dY %dM %dD\n", p.Years, p.Months, p.Days)
			fmt.Fprintf(out, "normalized: %s\n", f.Normalized())
			fmt.Fprintf(out, "term:       %t  week-based: %t  month-based: %t\n",
				f.IsTerm(), f.IsWeekBased(), f.IsMonthBased())
			if n, err := f.EventsPerYear(); err == nil {
				fmt.Fprintf(out, "events/yr:  %d\n", n)
			} else {
				fmt.Fprintf(out, "events/yr:  n/a\n")
			}

			if shiftDate != "" {
				base, err := time.Parse("2006-01-02", shiftDate)
				if err != nil {
					return fmt.Errorf("invalid --shift date %q, want YYYY-MM-DD", shiftDate)
				}
				next, err := f.AddTo(base)
				if err != nil {
					return err
				}
				prev, err := f.SubtractFrom(base)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s + %s = %s\n", shiftDate, f, next.Format("2006-01-02"))
				fmt.Fprintf(out, "%s - %s = %s\n", shiftDate, f, prev.Format("2006-01-02"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shiftDate, "shift", "", "also shift this date (YYYY-MM-DD) by the frequency")
	return cmd
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func newServeCmd() *cobra.Command {
	cfg := defaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				if err := loadFileConfig(cfgPath, &cfg); err != nil {
					return fmt.Errorf("loading config %s: %w", cfgPath, err)
				}
			}
			// Flags win over the config file
			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath, _ = cmd.Flags().GetString("db")
			}
			if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				logger = logger.Level(level)
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	cmd.Flags().Int("port", cfg.Port, "HTTP server port")
	cmd.Flags().String("db", cfg.DBPath, "SQLite database path (\":memory:\" for in-memory)")
	return cmd
}

func runServer(cfg config) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer store.Close()

	router := api.NewRouter(api.NewHandler(store))
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Port).Str("db", cfg.DBPath).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}
