package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"sensorhub-server/internal/control_plane/httpapi"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/infra/async"
	"sensorhub-server/internal/infra/samplestore"
	"sensorhub-server/internal/shared_kernel/domain"
	mockusecases "sensorhub-server/test/unit/doubles/control_plane/usecases"
	mockdispatcher "sensorhub-server/test/unit/doubles/data_plane/dispatcher"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("NodeController", func() {
	var (
		ctrl              *gomock.Controller
		mockRemoteService *mockusecases.MockRemoteSensorService
		mockSensorService *mockusecases.MockSensorService
		mockCatalog       *mockdispatcher.MockDeviceCatalog
		mockClient        *mockdispatcher.MockDeviceClient
		store             *samplestore.MemoryStore
		broker            *async.LocalBroker
		disp              *dispatcher.Dispatcher
		router            *http.ServeMux
		recorder          *httptest.ResponseRecorder
		ctx               context.Context
		cancel            context.CancelFunc
		runWG             sync.WaitGroup

		device       domain.Device
		sensor       domain.Sensor
		node         domain.Device
		remoteSensor domain.RemoteSensor
	)

	temp := 21.5

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRemoteService = mockusecases.NewMockRemoteSensorService(ctrl)
		mockSensorService = mockusecases.NewMockSensorService(ctrl)
		mockCatalog = mockdispatcher.NewMockDeviceCatalog(ctrl)
		mockClient = mockdispatcher.NewMockDeviceClient(ctrl)
		store = samplestore.NewMemoryStore()
		broker = async.NewLocalBroker()
		disp = dispatcher.NewDispatcher(mockCatalog, mockClient, store, broker)
		pool := &stubWorkerPool{dispatcher: disp}
		router = http.NewServeMux()
		httpapi.NewNodeController(mockRemoteService, mockSensorService, pool).AddRoutes(router)
		recorder = httptest.NewRecorder()
		ctx, cancel = context.WithCancel(context.Background())

		sensor = domain.Sensor{
			ID:              domain.ID("sensor-1"),
			Name:            "soil",
			Kind:            domain.SensorKindDS18B20,
			Address:         "28ff4a1c",
			RetentionWindow: time.Hour,
			DeviceID:        domain.ID("device-1"),
		}
		device = domain.Device{
			ID:              domain.ID("device-1"),
			Name:            "greenhouse",
			PollingInterval: time.Hour,
			Sensors:         []domain.Sensor{sensor},
		}
		node = domain.Device{ID: domain.ID("display-1"), Name: "kitchen display"}
		remoteSensor = domain.RemoteSensor{
			ID:              domain.ID("remote-1"),
			DeviceID:        node.ID,
			SensorID:        sensor.ID,
			PollingInterval: time.Minute,
			MaxSampleAge:    time.Hour,
			Fields: []domain.RemoteSensorField{
				{Name: domain.FieldTemperature, Label: "Soil"},
			},
		}

		mockClient.EXPECT().
			FetchSensorsInfo(gomock.Any(), gomock.Any()).
			Return(dto.SensorsInfo{
				"ds18b20": {Sensors: map[string]dto.SensorReading{
					"28ff4a1c": {Temperature: &temp},
				}},
			}, nil).
			AnyTimes()
		mockCatalog.EXPECT().
			ListDevices(gomock.Any()).
			Return([]domain.Device{device}, nil).
			AnyTimes()

		runWG.Add(1)
		go disp.Run(ctx, runWG.Done)
		Eventually(func() int {
			worker, err := disp.FindWorker(device.ID)
			if err != nil {
				return 0
			}
			samples, err := worker.GetSamples(ctx, sensor.ID, time.Hour)
			if err != nil {
				return 0
			}
			return len(samples)
		}).Should(BeNumerically(">=", 1))
	})

	AfterEach(func() {
		cancel()
		runWG.Wait()
		disp.Close()
		Expect(disp.WaitSettled(time.Second)).To(BeTrue())
		broker.Stop()
		ctrl.Finish()
	})

	Context("GET /nodes/{device_id}/sync", func() {
		It("returns an optimized series per subscription", func() {
			mockRemoteService.EXPECT().
				FindByDevice(gomock.Any(), node.ID).
				Return([]domain.RemoteSensor{remoteSensor}, nil)
			mockSensorService.EXPECT().
				GetSensor(gomock.Any(), sensor.ID).
				Return(sensor, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/nodes/display-1/sync", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response map[string]dispatcher.OptimizedSeries
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveKey("remote-1"))
			series := response["remote-1"]
			Expect(len(series.Data)).To(BeNumerically(">=", 1))
			Expect(*series.Data[0].Temperature).To(Equal(22.0))
			Expect(series.Data[0].Humidity).To(BeNil())
		})

		It("degrades a single failing subscription instead of the response", func() {
			broken := remoteSensor
			broken.ID = domain.ID("remote-2")
			broken.SensorID = domain.ID("ghost")

			mockRemoteService.EXPECT().
				FindByDevice(gomock.Any(), node.ID).
				Return([]domain.RemoteSensor{remoteSensor, broken}, nil)
			mockSensorService.EXPECT().
				GetSensor(gomock.Any(), sensor.ID).
				Return(sensor, nil)
			mockSensorService.EXPECT().
				GetSensor(gomock.Any(), domain.ID("ghost")).
				Return(domain.Sensor{}, usecases.ErrSensorNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/nodes/display-1/sync", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response map[string]json.RawMessage
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveKey("remote-1"))
			Expect(string(response["remote-2"])).To(MatchJSON(`{"error":true}`))
		})

		It("filters to a single subscription", func() {
			mockRemoteService.EXPECT().
				FindByDevice(gomock.Any(), node.ID).
				Return([]domain.RemoteSensor{remoteSensor}, nil)
			mockSensorService.EXPECT().
				GetSensor(gomock.Any(), sensor.ID).
				Return(sensor, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/nodes/display-1/sync?remote_sensor_id=remote-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("rejects an unknown subscription filter", func() {
			mockRemoteService.EXPECT().
				FindByDevice(gomock.Any(), node.ID).
				Return([]domain.RemoteSensor{remoteSensor}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/nodes/display-1/sync?remote_sensor_id=ghost", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a malformed since parameter", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/nodes/display-1/sync?since=yesterday", nil))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("POST /nodes/{device_id}/remote-sensors", func() {
		body := `{"sensor_id":"sensor-1","polling_interval_ms":60000,"max_sample_age_ms":3600000,"fields":[{"name":"temperature","label":"Soil"}]}`

		It("creates the subscription", func() {
			mockRemoteService.EXPECT().
				Create(gomock.Any(), usecases.RemoteSensorCommand{
					DeviceID:        node.ID,
					SensorID:        sensor.ID,
					PollingInterval: time.Minute,
					MaxSampleAge:    time.Hour,
					Fields: []domain.RemoteSensorField{
						{Name: domain.FieldTemperature, Label: "Soil"},
					},
				}).
				Return(remoteSensor, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/nodes/display-1/remote-sensors", strings.NewReader(body)))
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("maps an excessive sample age to 400", func() {
			mockRemoteService.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(domain.RemoteSensor{}, usecases.ErrSampleAgeExceedsRetention)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/nodes/display-1/remote-sensors", strings.NewReader(body)))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET /nodes/{device_id}/remote-sensors", func() {
		It("enriches subscriptions with the source sensor", func() {
			mockRemoteService.EXPECT().
				FindByDevice(gomock.Any(), node.ID).
				Return([]domain.RemoteSensor{remoteSensor}, nil)
			mockSensorService.EXPECT().
				GetSensor(gomock.Any(), sensor.ID).
				Return(sensor, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/nodes/display-1/remote-sensors", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response []map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveLen(1))
			Expect(response[0]["sensor_name"]).To(Equal("soil"))
			Expect(response[0]["sensor_kind"]).To(Equal("ds18b20"))
		})
	})

	Context("DELETE /nodes/remote-sensors/{id}", func() {
		It("removes the subscription", func() {
			mockRemoteService.EXPECT().
				Delete(gomock.Any(), remoteSensor.ID).
				Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/nodes/remote-sensors/remote-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
