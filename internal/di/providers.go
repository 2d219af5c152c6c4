package di

import (
	"context"
	"fmt"
	"time"

	"PolicyTone/internal/domain/models"
	"PolicyTone/internal/domain/repository"
	"PolicyTone/internal/lexicon"
	"PolicyTone/internal/ratehistory"
	internalrepo "PolicyTone/internal/repository"
	"PolicyTone/internal/service/bok"
	"PolicyTone/internal/service/docs"
	"PolicyTone/internal/service/pdftext"
	"PolicyTone/internal/tone"
	"PolicyTone/internal/usecase"
	"PolicyTone/pkg/cache"
	pkgch "PolicyTone/pkg/clickhouse"
	"PolicyTone/pkg/config"
	pkgkafka "PolicyTone/pkg/kafka"
	applogger "PolicyTone/pkg/logger"
	"PolicyTone/pkg/metrics"
	"PolicyTone/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideClickHouseClient creates a ClickHouse client when the
// clickhouse backend is selected, nil otherwise.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Backend.Type != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + cfg.ClickHouse.Database,
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer when the kafka backend
// is selected, nil otherwise.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideToneStorage creates ClickHouse tone storage, nil when the
// clickhouse backend is not selected.
func ProvideToneStorage(chClient *pkgch.Client, cfg *config.Config) (repository.Storage, error) {
	if chClient == nil {
		return nil, nil
	}

	store := internalrepo.NewClickHouseToneStore(
		chClient.DB(),
		cfg.ClickHouse.Database+".policy_tone",
		cfg.ClickHouse.Database+".policy_backtest",
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("tone storage: %w", err)
	}
	return store, nil
}

// ProvideTonePublisher creates the Kafka publisher, nil when the kafka
// backend is not selected.
func ProvideTonePublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaTonePublisher(producer, cfg.Kafka.Topic)
}

// ProvideCache creates the analysis cache: Redis when enabled,
// otherwise an in-memory LRU.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideLexicon loads the lexicon override or the built-in dictionary.
func ProvideLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	lex, err := lexicon.LoadOrDefault(cfg.Analysis.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	return lex, nil
}

// ProvideAnalyzer creates the tone analyzer.
func ProvideAnalyzer(lex *lexicon.Lexicon) *tone.Analyzer {
	return tone.NewAnalyzer(lex)
}

// ProvideRateHistory loads the rate-decision table override or the
// built-in table.
func ProvideRateHistory(cfg *config.Config) ([]models.RateDecision, error) {
	history, err := ratehistory.LoadOrDefault(cfg.Analysis.RateHistoryPath)
	if err != nil {
		return nil, fmt.Errorf("rate history: %w", err)
	}
	return history, nil
}

// ProvideDocumentStore creates the transcript file store.
func ProvideDocumentStore(cfg *config.Config) *docs.FileStore {
	return docs.NewFileStore(cfg.BOK.TextDir)
}

// ProvideDocumentProcessor creates the backend router use case.
func ProvideDocumentProcessor(
	pub repository.Publisher,
	store repository.Storage,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.DocumentProcessor {
	return usecase.NewDocumentProcessor(pub, store, m, cfg.Backend.Type)
}

// ProvideToneService creates the tone analysis use case.
func ProvideToneService(
	analyzer *tone.Analyzer,
	lex *lexicon.Lexicon,
	fileStore *docs.FileStore,
	history []models.RateDecision,
	proc *usecase.DocumentProcessor,
	cacheSvc cache.Service,
	m repository.Metrics,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.ToneService {
	return usecase.NewToneService(
		analyzer,
		lex,
		fileStore,
		history,
		proc,
		cacheSvc,
		m,
		cfg.Cache.TTL,
		cfg.Analysis.StartIndex,
		cfg.Analysis.ChunkSize,
		l,
	)
}

// ProvideMinutesIngestor creates the minutes crawl and extraction use case.
func ProvideMinutesIngestor(cfg *config.Config, fileStore *docs.FileStore, l *applogger.Logger) *usecase.MinutesIngestor {
	client := bok.NewClient(
		cfg.BOK.BaseURL,
		cfg.BOK.MeetingListURL,
		bok.WithDelay(cfg.BOK.RequestDelay),
		bok.WithTimeout(cfg.BOK.RequestTimeout),
		bok.WithLogger(l),
	)
	return usecase.NewMinutesIngestor(client, pdftext.NewExtractor(), fileStore, cfg.BOK.PDFDir, l)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	svc *usecase.ToneService,
	ingestor *usecase.MinutesIngestor,
	proc *usecase.DocumentProcessor,
	chClient *pkgch.Client,
	cacheSvc cache.Service,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, svc, ingestor, proc, chClient, cacheSvc, l)
}
