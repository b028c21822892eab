package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/duopane/internal/logging"
)

// Storage is the opened partition registry.
type Storage struct {
	DB         *sql.DB
	Registry   port.PartitionRegistry
	Partitions map[entity.Side]entity.Partition
	Duration   time.Duration
}

// Close releases the database.
func (s *Storage) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return sqlite.Close(s.DB)
}

// OpenRegistry opens the registry database without touching partitions.
// Used by the CLI.
func OpenRegistry(ctx context.Context, paths Paths) (*sql.DB, port.PartitionRegistry, error) {
	db, err := sqlite.NewConnection(ctx, paths.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database at %s: %w", paths.Database, err)
	}
	return db, sqlite.NewPartitionRepository(db, paths.PartitionsDir, paths.PartitionsCacheDir), nil
}

// OpenStorage prepares the XDG directories and opens the registry
// concurrently, then makes sure both sides own a partition.
func OpenStorage(ctx context.Context, paths Paths) (*Storage, error) {
	start := time.Now()

	var (
		db       *sql.DB
		registry port.PartitionRegistry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := config.EnsureDirectories(); err != nil {
			return fmt.Errorf("create XDG directories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		db, registry, err = OpenRegistry(gctx, paths)
		return err
	})
	if err := g.Wait(); err != nil {
		if db != nil {
			_ = sqlite.Close(db)
		}
		return nil, err
	}

	partitions, err := EnsurePartitions(ctx, registry)
	if err != nil {
		_ = sqlite.Close(db)
		return nil, err
	}

	return &Storage{
		DB:         db,
		Registry:   registry,
		Partitions: partitions,
		Duration:   time.Since(start),
	}, nil
}

// EnsurePartitions registers both sides in parallel and returns their
// partitions.
func EnsurePartitions(ctx context.Context, registry port.PartitionRegistry) (map[entity.Side]entity.Partition, error) {
	sides := entity.Sides()
	found := make([]entity.Partition, len(sides))

	g, gctx := errgroup.WithContext(ctx)
	for i, side := range sides {
		g.Go(func() error {
			p, err := registry.Ensure(gctx, side)
			if err != nil {
				return fmt.Errorf("ensure partition for side %s: %w", side, err)
			}
			found[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	out := make(map[entity.Side]entity.Partition, len(sides))
	for _, p := range found {
		out[p.Side] = p
		log.Debug().Str("side", p.Side.String()).Str("partition", string(p.Key)).Str("data_dir", p.DataDir).Msg("partition ready")
	}
	return out, nil
}
