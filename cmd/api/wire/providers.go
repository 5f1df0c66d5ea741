package wire

import (
	"os"
	"sync"
	"time"

	"sensorhub-server/cmd/config"
	"sensorhub-server/internal/data_plane/devices"
	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/async"
	"sensorhub-server/internal/infra/samplestore"
	"sensorhub-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	if environment() == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	db := sql.NewPostgreDatabase(cfg.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	orm, err := sql.NewPostgreORM(cfg.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func provideDeviceClient(cfg config.AppConfig) *devices.Client {
	opts := []devices.Option{}
	if cfg.DeviceClient.TimeoutMS > 0 {
		opts = append(opts, devices.WithTimeout(time.Duration(cfg.DeviceClient.TimeoutMS)*time.Millisecond))
	}

	return devices.NewClient(opts...)
}

var (
	sampleStoreInstance dispatcher.SampleStore
	sampleStoreOnce     sync.Once
)

// provideSampleStore is a singleton so the dispatcher and the retention
// sweeper operate on the same store.
func provideSampleStore(cfg config.AppConfig) dispatcher.SampleStore {
	sampleStoreOnce.Do(func() {
		if environment() == "local" {
			sampleStoreInstance = samplestore.NewMemoryStore()
			return
		}

		store, err := samplestore.NewRedisStore(&samplestore.RedisStoreConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			panic(err)
		}
		sampleStoreInstance = store
	})

	return sampleStoreInstance
}

func provideDispatcher(
	catalog dispatcher.DeviceCatalog,
	client dispatcher.DeviceClient,
	store dispatcher.SampleStore,
	broker async.InternalBroker,
	cfg config.AppConfig,
) *dispatcher.Dispatcher {
	return dispatcher.NewDispatcher(
		catalog,
		client,
		store,
		broker,
		dispatcher.WithPollRetryCount(cfg.Dispatcher.PollRetryCount),
	)
}

func provideRetentionSchedule(cfg config.AppConfig) string {
	return cfg.Dispatcher.RetentionSchedule
}

func environment() string {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	return env
}
