package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/b1443/ClosetManager/internal/config"
	"github.com/b1443/ClosetManager/internal/storage"
	"github.com/b1443/ClosetManager/pkg/classify"
	"github.com/b1443/ClosetManager/pkg/detection"
	"github.com/b1443/ClosetManager/pkg/ollama"
)

// loadConfig merges defaults, the config file, environment, and flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStorage opens the catalog database and brings the schema up to date.
func openStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// buildClassifier assembles the analysis pipeline for the configured backend.
// The heuristic stages always back the pipeline; the ollama backend only
// swaps in a vision-model type stage that falls back to the heuristic one.
func buildClassifier(cfg *config.Config) (*classify.Classifier, error) {
	switch cfg.Vision.Backend {
	case config.BackendHeuristic:
		return classify.New(), nil
	case config.BackendOllama:
		vc, err := ollama.NewClient(cfg.Vision.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect vision backend: %w", err)
		}
		return classify.NewWithStages(
			classify.NewHeuristicColor(),
			classify.NewHeuristicMaterial(),
			detection.NewObserver(vc, cfg.Vision.Model),
		), nil
	default:
		return nil, fmt.Errorf("unknown vision backend: %q", cfg.Vision.Backend)
	}
}
