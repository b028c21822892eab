package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

const partitionDirPerm = 0o700

type partitionRepo struct {
	db        *sql.DB
	dataRoot  string
	cacheRoot string
	now       func() time.Time
}

// NewPartitionRepository returns a registry storing each side's session
// data under dataRoot and its cache under cacheRoot.
func NewPartitionRepository(db *sql.DB, dataRoot, cacheRoot string) port.PartitionRegistry {
	return &partitionRepo{
		db:        db,
		dataRoot:  dataRoot,
		cacheRoot: cacheRoot,
		now:       time.Now,
	}
}

// dirName maps "persist:a" to a filesystem-safe directory name.
func dirName(key entity.PartitionKey) string {
	return strings.ReplaceAll(string(key), ":", "-")
}

func (r *partitionRepo) Ensure(ctx context.Context, side entity.Side) (entity.Partition, error) {
	log := logging.FromContext(ctx)

	key := entity.PartitionFor(side)
	p := entity.Partition{
		Side:      side,
		Key:       key,
		DataDir:   filepath.Join(r.dataRoot, dirName(key)),
		CacheDir:  filepath.Join(r.cacheRoot, dirName(key)),
		CreatedAt: r.now().UTC().Truncate(time.Millisecond),
	}

	// Existing rows keep their original directories and creation time.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO partitions (side, partition_key, data_dir, cache_dir, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(side) DO NOTHING`,
		side.String(), string(key), p.DataDir, p.CacheDir, p.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return entity.Partition{}, fmt.Errorf("failed to register partition %s: %w", key, err)
	}

	stored, err := r.find(ctx, side)
	if err != nil {
		return entity.Partition{}, err
	}

	for _, dir := range []string{stored.DataDir, stored.CacheDir} {
		if err := os.MkdirAll(dir, partitionDirPerm); err != nil {
			return entity.Partition{}, fmt.Errorf("failed to create partition directory %s: %w", dir, err)
		}
	}

	log.Debug().
		Str("side", side.String()).
		Str("partition", string(stored.Key)).
		Str("data_dir", stored.DataDir).
		Msg("partition ready")

	return stored, nil
}

func (r *partitionRepo) List(ctx context.Context) ([]entity.Partition, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT side, partition_key, data_dir, cache_dir, created_at, cleared_at
		FROM partitions
		ORDER BY side`)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var partitions []entity.Partition
	for rows.Next() {
		p, err := scanPartition(rows)
		if err != nil {
			return nil, err
		}
		partitions = append(partitions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}
	return partitions, nil
}

func (r *partitionRepo) Clear(ctx context.Context, side entity.Side) error {
	log := logging.FromContext(ctx)

	p, err := r.find(ctx, side)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("side", side.String()).Msg("partition never registered, nothing to clear")
		return nil
	}
	if err != nil {
		return err
	}

	for _, dir := range []string{p.DataDir, p.CacheDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE partitions SET cleared_at = ? WHERE side = ?`,
		r.now().UTC().UnixMilli(), side.String(),
	); err != nil {
		return fmt.Errorf("failed to mark partition %s cleared: %w", p.Key, err)
	}

	log.Info().Str("partition", string(p.Key)).Msg("partition data cleared")
	return nil
}

func (r *partitionRepo) find(ctx context.Context, side entity.Side) (entity.Partition, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT side, partition_key, data_dir, cache_dir, created_at, cleared_at
		FROM partitions
		WHERE side = ?`, side.String())

	p, err := scanPartition(row)
	if err != nil {
		return entity.Partition{}, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPartition(s scanner) (entity.Partition, error) {
	var (
		side, key         string
		dataDir, cacheDir string
		createdAt         int64
		clearedAt         sql.NullInt64
	)
	if err := s.Scan(&side, &key, &dataDir, &cacheDir, &createdAt, &clearedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Partition{}, err
		}
		return entity.Partition{}, fmt.Errorf("failed to scan partition: %w", err)
	}

	parsed, err := entity.ParseSide(side)
	if err != nil {
		return entity.Partition{}, err
	}

	p := entity.Partition{
		Side:      parsed,
		Key:       entity.PartitionKey(key),
		DataDir:   dataDir,
		CacheDir:  cacheDir,
		CreatedAt: time.UnixMilli(createdAt).UTC(),
	}
	if clearedAt.Valid {
		t := time.UnixMilli(clearedAt.Int64).UTC()
		p.ClearedAt = &t
	}
	return p, nil
}
