package domain

import (
	"context"
	"time"
)

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// ListingCache is a short-lived derived view of the unfiltered operation
// listing. Never a source of truth: every write invalidates it.
type ListingCache interface {
	Get(ctx context.Context) ([]*Operation, error)
	Set(ctx context.Context, operations []*Operation, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
