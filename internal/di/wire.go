//go:build wireinject
// +build wireinject

package di

import (
	"FinAdvisor/pkg/config"
	"FinAdvisor/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories
		ProvideGateway,
		ProvideSnapshotStore,
		ProvideSnapshotArchive,
		ProvidePublisher,
		ProvideMarketStream,

		// Use cases
		ProvideInstrumentCache,
		ProvideEngine,
		ProvideRecommender,
		ProvideLiveBoard,
		ProvideQuoteCollector,

		// HTTP surface
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
