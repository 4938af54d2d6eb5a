package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/ai/gemini"
	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/filtering"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/secrets"
)

// setup creates the logger and reads the config every command starts from.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

// newEngine builds the scoring engine from the configured data files, falling
// back to the built-in bank and catalog.
func newEngine(config *Config, base *zap.Logger) (*scoring.Engine, error) {
	bank := career.DefaultBank()
	if path := strings.TrimSpace(config.Questions); path != "" {
		loaded, err := career.LoadBank(path)
		if err != nil {
			return nil, err
		}
		bank = loaded
		base.Info("loaded question bank", zap.String("file", path), zap.Int("questions", bank.Len()))
	}

	catalog := career.DefaultCatalog()
	if path := strings.TrimSpace(config.Catalog); path != "" {
		loaded, err := career.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		catalog = loaded
		base.Info("loaded career catalog", zap.String("file", path), zap.Int("careers", catalog.Len()))
	}

	var streams []string
	if config.Exclude != nil {
		streams = config.Exclude.Streams
	}
	excluded := filtering.NewExcludedStreams(streams)
	if excluded.IsEnabled() {
		if err := excluded.Validate(); err != nil {
			return nil, fmt.Errorf("exclude.streams: %w", err)
		}
	}

	return scoring.New(bank, catalog, base, excluded)
}

func newTrendAnalyst(ctx context.Context, cfg *AIConfig, base *zap.Logger) (ai.TrendAnalyst, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai is disabled (set ai.enabled in the config)")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithFields(
		logger.WithCommonFields(base, "gemini", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, cfg.Gemini.RequestsPerMinute, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyst(generator, cfg.Gemini.MaxLogLength, base), nil
}
