package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"home-assessment/config"
	"home-assessment/reference"
	"home-assessment/repository"
	"home-assessment/service"
)

// app wires the services from a configuration.
type app struct {
	cfg         *config.Config
	investments *service.InvestmentService
	mortgage    *service.MortgageService
	prefill     *service.PrefillService
	properties  *service.PropertyService

	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	table := reference.Default()
	if cfg.Reference.File != "" {
		t, err := reference.LoadFile(cfg.Reference.File)
		if err != nil {
			return nil, err
		}
		table = t
		log.Printf("[INFO] county reference loaded from %s", cfg.Reference.File)
	}

	cache := a.openCache(ctx)

	repo, err := a.openStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	var explainer service.Explainer
	if cfg.Advisor.GeminiAPIKey != "" {
		g, err := service.NewGeminiExplainer(ctx, cfg.Advisor.GeminiAPIKey, cfg.Advisor.Model)
		if err != nil {
			log.Printf("[WARN] advisor disabled: %v", err)
		} else {
			explainer = g
			log.Printf("[INFO] advisor explanations enabled (%s)", cfg.Advisor.Model)
		}
	}

	advisor := service.NewAdvisorService(explainer, cfg.Analysis.FavorableIRR, cfg.Analysis.ModerateIRR)
	a.investments = service.NewInvestmentService(cache, advisor, cfg.Analysis.DiscountRate)
	a.mortgage = service.NewMortgageService()
	a.prefill = service.NewPrefillService(table)
	a.properties = service.NewPropertyService(repo, a.investments)
	return a, nil
}

// openCache uses Redis when configured and reachable, the in-process cache
// otherwise.
func (a *app) openCache(ctx context.Context) repository.CacheRepository {
	if a.cfg.Cache.RedisAddr == "" {
		return repository.NewMemoryCache(a.cfg.CacheTTL())
	}

	rc := repository.NewRedisCache(a.cfg.Cache.RedisAddr, a.cfg.CacheTTL())
	if err := rc.Ping(ctx); err != nil {
		log.Printf("[WARN] redis at %s unreachable, using in-memory cache: %v", a.cfg.Cache.RedisAddr, err)
		rc.Close()
		return repository.NewMemoryCache(a.cfg.CacheTTL())
	}
	log.Printf("[INFO] redis cache connected: %s", a.cfg.Cache.RedisAddr)
	a.closers = append(a.closers, rc.Close)
	return rc
}

func (a *app) openStore() (repository.PropertyRepository, error) {
	path := a.cfg.Database.SQLitePath
	if path == "" {
		return repository.NewPropertyRepositoryMemory(), nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	repo, err := repository.NewSQLitePropertyRepository(path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, repo.Close)
	return repo, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("[WARN] close: %v", err)
		}
	}
	a.closers = nil
}
