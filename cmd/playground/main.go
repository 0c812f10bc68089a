// The playground command serves the exercise catalog over HTTP: a chat
// proxy plus sentiment and summarization endpoints backed by whichever
// providers have credentials configured.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/internal/platform/logger"
	"github.com/practica/exercises/internal/platform/otel"
	"github.com/practica/exercises/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cli.Fail(err)
	}

	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()
	log := logger.Get()

	if cfg.Tracing.Enabled {
		shutdown, err := otel.InitTracer("playground", log, os.Stdout)
		if err != nil {
			log.Fatal("tracer init failed", zap.Error(err))
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
	}

	go checkForUpdates()

	// Build a client for every provider with credentials. Providers with
	// missing keys are skipped, not fatal: the playground serves whatever
	// is configured.
	clients := make(map[llm.ProviderName]llm.Client)
	for _, name := range llm.ValidProviders() {
		client, err := llm.New(cfg, name)
		if err != nil {
			log.Info("provider not configured", zap.String("provider", string(name)), zap.Error(err))
			continue
		}
		clients[name] = client
	}
	if len(clients) == 0 {
		log.Warn("no providers configured, chat endpoints will reject all requests")
	}

	if err := server.New(cfg, log, clients).Run(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
