package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	httpLayer "home-assessment/http"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	configPath string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-config <path>]

  Serves the analysis, prefill, mortgage and saved property endpoints.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	configFlag(f, &c.configPath)
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimitWindow())
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Analysis:   httpLayer.NewAnalysisHandler(a.investments, a.prefill),
		Mortgage:   httpLayer.NewMortgageHandler(a.mortgage),
		Properties: httpLayer.NewPropertyHandler(a.properties),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.RateLimitMiddleware(rateLimiter, cfg.RateLimit.TrustForwardedFor, router),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("[INFO] API listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		log.Printf("[ERROR] starting server: %v", err)
		return subcommands.ExitFailure
	case <-quit:
		log.Println("[INFO] shutting down server...")
	case <-ctx.Done():
		log.Println("[INFO] context cancelled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] during server shutdown: %v", err)
		return subcommands.ExitFailure
	}

	log.Println("[INFO] server exited")
	return subcommands.ExitSuccess
}
