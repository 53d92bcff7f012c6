package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/amirhossein-jamali/txfixture/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txfixture/internal/domain/usecase/uow"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/config"
)

var errUnexpectedOrder = errors.New("unexpected hook order")

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	join := flag.Bool("join", cfg.Fixture.JoinAmbient,
		"run inside one outer transaction that is rolled back at the end")
	flag.Parse()

	appLogger := logger.NewZapLogger(cfg.IsProduction() || cfg.Logger.Format == "json")
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	dbConfig := database.CreateConfigFromAppConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	var invalidation *cache.InvalidationOperation
	if cfg.Fixture.RedisAddr != "" {
		client := cache.NewClient(cfg.Fixture.RedisAddr)
		defer func() { _ = client.Close() }()
		invalidation = cache.NewInvalidationOperation(client, cfg.Fixture.InvalidationPrefix, appLogger)
	}

	checker := &checker{
		manager:      dbManager,
		logger:       appLogger,
		timeProvider: tp,
		sequencer:    uow.NewSequencer(),
		invalidation: invalidation,
		join:         *join,
	}

	if err := checker.run(ctx); err != nil {
		appLogger.Error("Unit of work check failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	appLogger.Info("Unit of work check passed", map[string]any{"joined": *join})
}

// checker drives the commit and rollback scenarios against a live database
type checker struct {
	manager      *database.Manager
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	sequencer    *uow.Sequencer
	invalidation *cache.InvalidationOperation
	join         bool
}

func (c *checker) run(ctx context.Context) error {
	scenarios := []struct {
		name string
		fail bool
		want []string
	}{
		{"commit", false, []string{
			"A.commit", "B.commit", "C.commit",
			"A.post_commit", "B.post_commit", "C.post_commit",
		}},
		{"rollback", true, []string{
			"A.rollback", "B.rollback", "C.rollback",
			"A.post_rollback", "B.post_rollback", "C.post_rollback",
		}},
	}

	var shared *database.GormSession
	if c.join {
		session, err := c.manager.BeginSession(ctx, true)
		if err != nil {
			return err
		}
		defer func() {
			if err := session.Rollback(context.Background()); err != nil {
				c.logger.Error("Failed to roll back outer transaction", map[string]any{"error": err.Error()})
			}
		}()
		shared = session
	}

	for _, sc := range scenarios {
		got, err := c.runScenario(ctx, shared, sc.fail)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.name, err)
		}

		fmt.Printf("%-8s %v\n", sc.name, got)
		if !slices.Equal(got, sc.want) {
			return fmt.Errorf("scenario %s: %w: got %v, want %v", sc.name, errUnexpectedOrder, got, sc.want)
		}
	}
	return nil
}

// runScenario runs one unit with operations A, B and C and returns the
// recorded labels. Without a shared session each scenario gets its own owning
// session whose rows are read back and deleted afterwards.
func (c *checker) runScenario(ctx context.Context, shared *database.GormSession, fail bool) ([]string, error) {
	session := shared
	if session == nil {
		owned, err := c.manager.BeginSession(ctx, false)
		if err != nil {
			return nil, err
		}
		defer func() { _ = owned.Rollback(context.Background()) }()
		session = owned
	}

	repo := repository.NewHookEventRepository(session, c.logger)
	ops := []persistence.Operation{
		uow.NewRecordingOperation("A", repo, c.sequencer, c.timeProvider),
		uow.NewRecordingOperation("B", repo, c.sequencer, c.timeProvider),
		uow.NewRecordingOperation("C", repo, c.sequencer, c.timeProvider),
	}
	if c.invalidation != nil {
		ops = append(ops, c.invalidation)
	}
	unit := uow.NewNestedUnitOfWork(session, c.logger, ops...)

	scenarioErr := errors.New("scenario rollback requested")
	err := unit.Do(ctx, func(ctx context.Context, tx persistence.TransactionCoordinator) error {
		// a second Enter on an open unit reuses its savepoint
		if _, err := tx.Enter(ctx); err != nil {
			return err
		}
		if c.invalidation != nil {
			c.invalidation.Invalidate("unit:" + tx.ID())
		}
		if fail {
			return scenarioErr
		}
		return nil
	})
	if err != nil && !errors.Is(err, scenarioErr) {
		return nil, err
	}

	if shared != nil {
		events, err := repo.ListByUnit(ctx, unit.ID())
		if err != nil {
			return nil, err
		}
		return labels(events), nil
	}

	// hook rows land in the transaction that is open after the unit finishes
	if err := session.Commit(ctx); err != nil {
		return nil, err
	}
	committed := repository.NewHookEventRepository(database.NewStaticDB(c.manager.DB()), c.logger)
	events, err := committed.ListByUnit(ctx, unit.ID())
	if err != nil {
		return nil, err
	}
	if err := committed.DeleteByUnit(ctx, unit.ID()); err != nil {
		c.logger.Warn("Failed to delete recorded hook events", map[string]any{
			"unit_id": unit.ID(),
			"error":   err.Error(),
		})
	}
	return labels(events), nil
}

func labels(events []*entity.HookEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Label())
	}
	return out
}
