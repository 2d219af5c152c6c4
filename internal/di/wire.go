//go:build wireinject
// +build wireinject

package di

import (
	"PolicyTone/pkg/config"
	"PolicyTone/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideCache,

		// Repositories
		ProvideToneStorage,
		ProvideTonePublisher,

		// Analysis core
		ProvideLexicon,
		ProvideAnalyzer,
		ProvideRateHistory,
		ProvideDocumentStore,

		// Use cases
		ProvideDocumentProcessor,
		ProvideToneService,
		ProvideMinutesIngestor,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
