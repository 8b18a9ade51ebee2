package service

import (
	"context"

	"servihub/internal/domain/entity"
)

// ChangePublisher publishes committed row changes to interested consumers.
type ChangePublisher interface {
	// Publish delivers a row change. Implementations must not block on slow consumers.
	Publish(ctx context.Context, change *entity.RowChange) error

	// Close releases any resources held by the publisher
	Close() error
}

// ChangeFilter narrows a subscription to rows whose Column equals Value. An empty Column matches every row.
type ChangeFilter struct {
	Table  string
	Types  []entity.ChangeType
	Column string
	Value  string
}

// Matches reports whether the change satisfies the filter.
func (f ChangeFilter) Matches(change *entity.RowChange) bool {
	if change == nil || change.Table != f.Table {
		return false
	}

	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if t == change.Type {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Column == "" {
		return true
	}

	return change.Field(f.Column) == f.Value
}

// Subscription is a live change stream.
type Subscription interface {
	// Events yields matching row changes until the subscription ends.
	Events() <-chan *entity.RowChange

	// Done is closed when the subscription ends; Err then reports why (nil after Close).
	Done() <-chan struct{}
	Err() error

	// Close ends the subscription and releases its resources.
	Close()
}

// ChangeSubscriber opens change subscriptions for realtime sessions.
type ChangeSubscriber interface {
	// Subscribe registers filters on a named channel. It returns once the subscription
	// is acknowledged or fails; ctx bounds the wait.
	Subscribe(ctx context.Context, channel string, filters ...ChangeFilter) (Subscription, error)
}
