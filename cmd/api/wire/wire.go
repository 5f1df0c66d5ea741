//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"sensorhub-server/internal/control_plane/httpapi"
	"sensorhub-server/internal/control_plane/persistence"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/data_plane/devices"
	"sensorhub-server/internal/data_plane/dispatcher"
	dataplanehttpapi "sensorhub-server/internal/data_plane/httpapi"
	"sensorhub-server/internal/data_plane/workers"
	"sensorhub-server/internal/infra/async"

	"github.com/google/wire"
)

var DeviceServiceSet = wire.NewSet(
	provideDatabase,
	provideDeviceClient,
	persistence.NewDeviceRepository,
	wire.Bind(new(usecases.DeviceRepository), new(*persistence.SimpleDeviceRepository)),
	persistence.NewSensorRepository,
	wire.Bind(new(usecases.SensorRepository), new(*persistence.SimpleSensorRepository)),
	wire.Bind(new(usecases.DeviceProvisioner), new(*devices.Client)),
	usecases.NewDeviceService,
)

var SensorServiceSet = wire.NewSet(
	provideDatabase,
	provideDeviceClient,
	persistence.NewSensorRepository,
	wire.Bind(new(usecases.SensorRepository), new(*persistence.SimpleSensorRepository)),
	persistence.NewDeviceRepository,
	wire.Bind(new(usecases.DeviceRepository), new(*persistence.SimpleDeviceRepository)),
	wire.Bind(new(usecases.SensorProbe), new(*devices.Client)),
	usecases.NewSensorService,
)

func InitializeDeviceController(pool httpapi.WorkerPool) (*httpapi.DeviceController, error) {
	wire.Build(
		provideAppConfig,
		DeviceServiceSet,
		wire.Bind(new(usecases.DeviceService), new(*usecases.SimpleDeviceService)),
		httpapi.NewDeviceController,
	)

	return nil, nil
}

func InitializeSensorController(pool httpapi.WorkerPool) (*httpapi.SensorController, error) {
	wire.Build(
		provideAppConfig,
		SensorServiceSet,
		wire.Bind(new(usecases.SensorService), new(*usecases.SimpleSensorService)),
		httpapi.NewSensorController,
	)

	return nil, nil
}

func InitializeNodeController(pool httpapi.WorkerPool) (*httpapi.NodeController, error) {
	wire.Build(
		provideAppConfig,
		SensorServiceSet,
		wire.Bind(new(usecases.SensorService), new(*usecases.SimpleSensorService)),
		persistence.NewRemoteSensorRepository,
		wire.Bind(new(usecases.RemoteSensorRepository), new(*persistence.SimpleRemoteSensorRepository)),
		usecases.NewRemoteSensorService,
		wire.Bind(new(usecases.RemoteSensorService), new(*usecases.SimpleRemoteSensorService)),
		httpapi.NewNodeController,
	)

	return nil, nil
}

func InitializeDispatcher(broker async.InternalBroker) (*dispatcher.Dispatcher, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewDeviceCatalog,
		wire.Bind(new(dispatcher.DeviceCatalog), new(*persistence.SimpleDeviceCatalog)),
		provideDeviceClient,
		wire.Bind(new(dispatcher.DeviceClient), new(*devices.Client)),
		provideSampleStore,
		provideDispatcher,
	)

	return nil, nil
}

func InitializeRetentionSweeper(ticker *time.Ticker, dispatcherInstance *dispatcher.Dispatcher) (*workers.RetentionSweeper, error) {
	wire.Build(
		provideAppConfig,
		provideSampleStore,
		provideRetentionSchedule,
		workers.NewRetentionSweeper,
	)

	return nil, nil
}

func InitializeSampleStreamWebSocketController(broker async.InternalBroker) (*dataplanehttpapi.SampleStreamWebSocketController, error) {
	wire.Build(
		dataplanehttpapi.NewSampleStreamWebSocketController,
	)

	return nil, nil
}
