package usecases_test

import (
	"context"
	"time"

	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/shared_kernel/domain"
	mockusecases "sensorhub-server/test/unit/doubles/control_plane/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RemoteSensorService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepo       *mockusecases.MockRemoteSensorRepository
		mockDeviceRepo *mockusecases.MockDeviceRepository
		mockSensorRepo *mockusecases.MockSensorRepository
		service        *usecases.SimpleRemoteSensorService
		ctx            context.Context
	)

	device := domain.Device{ID: domain.ID("display-1"), Name: "kitchen display"}
	sensor := domain.Sensor{
		ID:              domain.ID("sensor-1"),
		Name:            "soil",
		DeviceID:        domain.ID("device-1"),
		RetentionWindow: 24 * time.Hour,
	}

	cmd := usecases.RemoteSensorCommand{
		DeviceID:        device.ID,
		SensorID:        sensor.ID,
		PollingInterval: time.Minute,
		MaxSampleAge:    6 * time.Hour,
		Fields: []domain.RemoteSensorField{
			{Name: domain.FieldTemperature, Label: "Soil", Color: 0xFF0000, RangeMin: -10, RangeMax: 40},
		},
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepo = mockusecases.NewMockRemoteSensorRepository(ctrl)
		mockDeviceRepo = mockusecases.NewMockDeviceRepository(ctrl)
		mockSensorRepo = mockusecases.NewMockSensorRepository(ctrl)
		service = usecases.NewRemoteSensorService(mockRepo, mockDeviceRepo, mockSensorRepo)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Create", func() {
		It("binds an existing device to an existing sensor", func() {
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockSensorRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			remoteSensor, err := service.Create(ctx, cmd)
			Expect(err).NotTo(HaveOccurred())
			Expect(remoteSensor.ID).NotTo(BeEmpty())
			Expect(remoteSensor.DeviceID).To(Equal(device.ID))
			Expect(remoteSensor.SensorID).To(Equal(sensor.ID))
			Expect(remoteSensor.FieldNames()).To(Equal([]domain.ReadingField{domain.FieldTemperature}))
		})

		It("fails when the consuming device is unknown", func() {
			mockDeviceRepo.EXPECT().
				Get(gomock.Any(), device.ID).
				Return(domain.Device{}, usecases.ErrDeviceNotFound)

			_, err := service.Create(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrDeviceNotFound))
		})

		It("refuses more history than the sensor retains", func() {
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockSensorRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)

			greedy := cmd
			greedy.MaxSampleAge = 48 * time.Hour
			_, err := service.Create(ctx, greedy)
			Expect(err).To(MatchError(usecases.ErrSampleAgeExceedsRetention))
		})

		It("fails when the source sensor is unknown", func() {
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockSensorRepo.EXPECT().
				Get(gomock.Any(), sensor.ID).
				Return(domain.Sensor{}, usecases.ErrSensorNotFound)

			_, err := service.Create(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrSensorNotFound))
		})
	})

	Describe("Update", func() {
		It("rebinds and replaces tuning", func() {
			existing := domain.RemoteSensor{
				ID:              domain.ID("remote-1"),
				DeviceID:        device.ID,
				SensorID:        domain.ID("old-sensor"),
				PollingInterval: 10 * time.Second,
			}
			mockRepo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil)
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockSensorRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.Update(ctx, existing.ID, cmd)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(existing.ID))
			Expect(updated.SensorID).To(Equal(sensor.ID))
			Expect(updated.PollingInterval).To(Equal(time.Minute))
			Expect(updated.MaxSampleAge).To(Equal(6 * time.Hour))
		})

		It("propagates not found", func() {
			mockRepo.EXPECT().
				Get(gomock.Any(), domain.ID("missing")).
				Return(domain.RemoteSensor{}, usecases.ErrRemoteSensorNotFound)

			_, err := service.Update(ctx, domain.ID("missing"), cmd)
			Expect(err).To(MatchError(usecases.ErrRemoteSensorNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes an existing subscription", func() {
			remoteSensor := domain.RemoteSensor{ID: domain.ID("remote-1")}
			mockRepo.EXPECT().Get(gomock.Any(), remoteSensor.ID).Return(remoteSensor, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), remoteSensor.ID).Return(nil)

			Expect(service.Delete(ctx, remoteSensor.ID)).To(Succeed())
		})

		It("propagates not found", func() {
			mockRepo.EXPECT().
				Get(gomock.Any(), domain.ID("missing")).
				Return(domain.RemoteSensor{}, usecases.ErrRemoteSensorNotFound)

			err := service.Delete(ctx, domain.ID("missing"))
			Expect(err).To(MatchError(usecases.ErrRemoteSensorNotFound))
		})
	})
})
