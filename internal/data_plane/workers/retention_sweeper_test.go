package workers_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/data_plane/workers"
	"sensorhub-server/internal/infra/async"
	"sensorhub-server/internal/infra/samplestore"
	"sensorhub-server/internal/shared_kernel/domain"
	mockdispatcher "sensorhub-server/test/unit/doubles/data_plane/dispatcher"
)

var _ = Describe("RetentionSweeper", func() {
	var (
		ctrl        *gomock.Controller
		mockClient  *mockdispatcher.MockDeviceClient
		mockCatalog *mockdispatcher.MockDeviceCatalog
		store       *samplestore.MemoryStore
		broker      *async.LocalBroker
		disp        *dispatcher.Dispatcher
		ctx         context.Context
		cancel      context.CancelFunc
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockClient = mockdispatcher.NewMockDeviceClient(ctrl)
		mockCatalog = mockdispatcher.NewMockDeviceCatalog(ctrl)
		store = samplestore.NewMemoryStore()
		broker = async.NewLocalBroker()
		disp = dispatcher.NewDispatcher(mockCatalog, mockClient, store, broker)
		ctx, cancel = context.WithCancel(context.Background())

		mockClient.EXPECT().
			FetchSensorsInfo(gomock.Any(), gomock.Any()).
			Return(dto.SensorsInfo{}, nil).
			AnyTimes()
	})

	AfterEach(func() {
		cancel()
		disp.Close()
		Expect(disp.WaitSettled(time.Second)).To(BeTrue())
		broker.Stop()
		ctrl.Finish()
	})

	It("prunes samples beyond each sensor's retention window", func() {
		sensor := domain.Sensor{
			ID:              domain.ID("sensor-1"),
			Name:            "probe",
			Kind:            domain.SensorKindDS18B20,
			Address:         "28ff01",
			RetentionWindow: time.Minute,
			DeviceID:        domain.ID("device-1"),
		}
		device := domain.Device{
			ID:              domain.ID("device-1"),
			Name:            "greenhouse",
			Address:         "10.0.0.20",
			PollingInterval: time.Hour,
			Sensors:         []domain.Sensor{sensor},
		}
		mockCatalog.EXPECT().ListDevices(gomock.Any()).Return([]domain.Device{device}, nil)
		Expect(disp.LoadWorkers(ctx)).To(Succeed())

		now := time.Now().UTC()
		Expect(store.Append(ctx, "sensor-1", now.Add(-10*time.Minute), domain.ErroredReading())).To(Succeed())
		Expect(store.Append(ctx, "sensor-1", now.Add(-10*time.Second), domain.ErroredReading())).To(Succeed())

		ticker := time.NewTicker(10 * time.Millisecond)
		sweeper := workers.NewRetentionSweeper(ticker, disp, store, "* * * * *")

		var wg sync.WaitGroup
		wg.Add(1)
		go sweeper.Run(ctx, wg.Done)

		// the sample outside the retention window disappears
		Eventually(func() int {
			samples, _ := store.RangeSince(ctx, "sensor-1", now.Add(-time.Hour), now.Add(-5*time.Minute))
			return len(samples)
		}).Should(BeZero())

		// the recent one survives
		samples, err := store.RangeSince(ctx, "sensor-1", now.Add(-30*time.Second), now)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples).To(HaveLen(1))

		cancel()
		wg.Wait()
		sweeper.Shutdown()
	})
})
