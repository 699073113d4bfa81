package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nandanmaalige/fitness-forge/internal/config"
	"github.com/nandanmaalige/fitness-forge/internal/domain"
	"github.com/nandanmaalige/fitness-forge/internal/events"
	"github.com/nandanmaalige/fitness-forge/internal/persistence/memory"
	"github.com/nandanmaalige/fitness-forge/internal/persistence/postgres"
)

// openStore builds the adapter selected by STORAGE_DRIVER. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config, migrate bool) (domain.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		repo := postgres.NewRepository(pool)
		if migrate {
			if err := repo.Migrate(ctx); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return repo, pool.Close, nil
	default:
		return memory.NewRepository(), func() {}, nil
	}
}

// seedDemoData runs the store's idempotent demo seeding when it supports one.
func seedDemoData(ctx context.Context, store domain.Store) error {
	seeder, ok := store.(domain.Seeder)
	if !ok {
		return nil
	}
	seeded, err := seeder.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	if seeded {
		log.Printf("seeded demo account")
	}
	return nil
}

// openPublisher returns a Kafka publisher when brokers are configured.
func openPublisher(cfg config.Config) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NoopPublisher{}, func() {}
	}
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EventsTopicPrefix)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Printf("close kafka publisher: %v", err)
		}
	}
}
