package entity

import "time"

// PartitionKey identifies a durable session-storage partition (cookies,
// local storage, credentials) bound to a logical side.
type PartitionKey string

const partitionPrefix = "persist:"

// PartitionFor returns the partition key owned by a logical side. The key
// never changes for the lifetime of an install.
func PartitionFor(side Side) PartitionKey {
	return PartitionKey(partitionPrefix + side.String())
}

// EffectivePartition returns the partition backing the content shown at a
// visual position. It composes with the swap flag exactly like URL lookup.
func EffectivePartition(p Position, swapped bool) PartitionKey {
	return PartitionFor(SideAt(p, swapped))
}

// Partition is a registered partition and its on-disk storage.
type Partition struct {
	Side      Side
	Key       PartitionKey
	DataDir   string
	CacheDir  string
	CreatedAt time.Time
	// ClearedAt is set once the stored session data has been wiped.
	ClearedAt *time.Time
}
