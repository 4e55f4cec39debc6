package services

import (
	"context"
	"strings"
	"time"

	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
	mem "smartcity/pkg/memcache"
)

// ListResult is the outcome of a list-fetch. On failure Err is set, Stale is true
// and Items holds the last-known-good list of the view session (possibly empty).
type ListResult[T any] struct {
	Items []T
	Err   error
	Stale bool
}

// ListKeeper remembers, per view session and list, the last list the backend
// returned successfully. Failed fetches fall back to it instead of clearing the list.
type ListKeeper struct {
	store mem.SnapshotStore
	ttl   time.Duration
}

func NewListKeeper(store mem.SnapshotStore, ttl time.Duration) *ListKeeper {
	return &ListKeeper{store: store, ttl: ttl}
}

func (k *ListKeeper) key(session, name string) string {
	return session + ":" + name
}

func fetchList[T any](ctx context.Context, k *ListKeeper, session, name string, fetch func(context.Context) ([]T, error)) ListResult[T] {
	items, err := fetch(ctx)
	if err == nil {
		if items == nil {
			items = []T{}
		}
		k.store.Set(k.key(session, name), items, k.ttl)
		return ListResult[T]{Items: items}
	}

	res := ListResult[T]{Err: err, Stale: true, Items: []T{}}
	if prev, ok := lastKnown[T](k, session, name); ok {
		res.Items = prev
	}
	return res
}

// currentList is what a screen shows when it re-renders without a reason to
// re-fetch (e.g. a rejected submit): the last-known-good list, or a fresh fetch
// when the session has none yet.
func currentList[T any](ctx context.Context, k *ListKeeper, session, name string, fetch func(context.Context) ([]T, error)) ListResult[T] {
	if prev, ok := lastKnown[T](k, session, name); ok {
		return ListResult[T]{Items: prev}
	}
	return fetchList(ctx, k, session, name, fetch)
}

func lastKnown[T any](k *ListKeeper, session, name string) ([]T, bool) {
	v, ok := k.store.Get(k.key(session, name))
	if !ok {
		return nil, false
	}
	items, ok := v.([]T)
	return items, ok
}

// Outcome of a create operation.
type Outcome struct {
	OK      bool
	Message string
}

func accepted(msg response_models.MessageResponse, fallback string) Outcome {
	if strings.TrimSpace(msg.Message) != "" {
		return Outcome{OK: true, Message: msg.Message}
	}
	return Outcome{OK: true, Message: fallback}
}

func refused(err error) Outcome {
	return Outcome{Message: ErrorText(err)}
}

// ErrorText is the message shown for a failed backend call: the structured server
// error when there is one, the transport error text otherwise.
func ErrorText(err error) string {
	if msg, ok := repositories.ServerMessage(err); ok {
		return msg
	}
	return err.Error()
}
