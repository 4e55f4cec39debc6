package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"smartcity/internal/config"
	"smartcity/internal/services"
	mem "smartcity/pkg/memcache"
)

const janitorInterval = time.Minute

var Module = fx.Provide(provideSnapshotStore, provideListKeeper)

func provideSnapshotStore(lc fx.Lifecycle) mem.SnapshotStore {
	store := mem.NewSnapshots()
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go mem.RunJanitor(ctx, store, janitorInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}

func provideListKeeper(store mem.SnapshotStore, cfg *config.Config) *services.ListKeeper {
	return services.NewListKeeper(store, cfg.SnapshotTTL)
}
