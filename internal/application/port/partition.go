package port

import (
	"context"

	"github.com/bnema/duopane/internal/domain/entity"
)

// PartitionRegistry records the durable partition of each logical side and
// where its session data lives on disk.
type PartitionRegistry interface {
	// Ensure returns the partition for side, registering it on first use.
	Ensure(ctx context.Context, side entity.Side) (entity.Partition, error)

	// List returns every registered partition.
	List(ctx context.Context) ([]entity.Partition, error)

	// Clear removes the stored session data of a side while keeping its
	// partition key.
	Clear(ctx context.Context, side entity.Side) error
}
