package usecases_test

import (
	"context"
	"errors"
	"time"

	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/shared_kernel/domain"
	mockusecases "sensorhub-server/test/unit/doubles/control_plane/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SensorService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepo       *mockusecases.MockSensorRepository
		mockDeviceRepo *mockusecases.MockDeviceRepository
		mockProbe      *mockusecases.MockSensorProbe
		service        *usecases.SimpleSensorService
		ctx            context.Context
	)

	device := domain.Device{ID: domain.ID("device-1"), Name: "greenhouse", Address: "10.0.0.42"}

	documentWith := func(kind domain.SensorKind, address string) dto.SensorsInfo {
		temp := 21.5
		return dto.SensorsInfo{
			string(kind): dto.SensorTypeInfo{
				Sensors: map[string]dto.SensorReading{
					address: {Temperature: &temp},
				},
			},
		}
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepo = mockusecases.NewMockSensorRepository(ctrl)
		mockDeviceRepo = mockusecases.NewMockDeviceRepository(ctrl)
		mockProbe = mockusecases.NewMockSensorProbe(ctrl)
		service = usecases.NewSensorService(mockRepo, mockDeviceRepo, mockProbe)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("RegisterSensor", func() {
		cmd := usecases.RegisterSensorCommand{
			DeviceID:        device.ID,
			Name:            "soil",
			Kind:            domain.SensorKindDS18B20,
			Address:         "28ff4a1c",
			RetentionWindow: time.Hour,
		}

		It("verifies the sensor on the device and catalogs it", func() {
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().FindByDevice(gomock.Any(), device.ID).Return(nil, nil)
			mockProbe.EXPECT().
				FetchSensorsInfo(gomock.Any(), device).
				Return(documentWith(domain.SensorKindDS18B20, "28ff4a1c"), nil)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			sensor, err := service.RegisterSensor(ctx, cmd)
			Expect(err).NotTo(HaveOccurred())
			Expect(sensor.ID).NotTo(BeEmpty())
			Expect(sensor.Kind).To(Equal(domain.SensorKindDS18B20))
			Expect(sensor.DeviceID).To(Equal(device.ID))
		})

		It("rejects a duplicate kind and address", func() {
			existing := []domain.Sensor{{
				ID:      domain.ID("sensor-1"),
				Kind:    domain.SensorKindDS18B20,
				Address: "28ff4a1c",
			}}
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().FindByDevice(gomock.Any(), device.ID).Return(existing, nil)

			_, err := service.RegisterSensor(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrSensorDuplicated))
		})

		It("fails when the sensor does not answer on the device", func() {
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().FindByDevice(gomock.Any(), device.ID).Return(nil, nil)
			mockProbe.EXPECT().
				FetchSensorsInfo(gomock.Any(), device).
				Return(documentWith(domain.SensorKindDS18B20, "othersensor"), nil)

			_, err := service.RegisterSensor(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrSensorUnavailable))
		})

		It("fails when the sensor list cannot be fetched", func() {
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().FindByDevice(gomock.Any(), device.ID).Return(nil, nil)
			mockProbe.EXPECT().
				FetchSensorsInfo(gomock.Any(), device).
				Return(nil, errors.New("timeout"))

			_, err := service.RegisterSensor(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrSensorListUnavailable))
		})

		It("fails when the device is unknown", func() {
			mockDeviceRepo.EXPECT().
				Get(gomock.Any(), device.ID).
				Return(domain.Device{}, usecases.ErrDeviceNotFound)

			_, err := service.RegisterSensor(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrDeviceNotFound))
		})
	})

	Describe("UnregisterSensor", func() {
		It("returns the last cataloged state", func() {
			sensor := domain.Sensor{ID: domain.ID("sensor-1"), Name: "soil", DeviceID: device.ID}
			mockRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), sensor.ID).Return(nil)

			removed, err := service.UnregisterSensor(ctx, sensor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed.Name).To(Equal("soil"))
			Expect(removed.DeviceID).To(Equal(device.ID))
		})

		It("propagates not found", func() {
			mockRepo.EXPECT().
				Get(gomock.Any(), domain.ID("missing")).
				Return(domain.Sensor{}, usecases.ErrSensorNotFound)

			_, err := service.UnregisterSensor(ctx, domain.ID("missing"))
			Expect(err).To(MatchError(usecases.ErrSensorNotFound))
		})
	})

	Describe("UpdateSensor", func() {
		sensor := domain.Sensor{
			ID:       domain.ID("sensor-1"),
			Name:     "soil",
			Kind:     domain.SensorKindDS18B20,
			Address:  "28ff4a1c",
			DeviceID: device.ID,
		}

		It("renames without touching the device", func() {
			mockRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			name := "soil-north"
			updated, err := service.UpdateSensor(ctx, sensor.ID, usecases.SensorUpdateCommand{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("soil-north"))
		})

		It("re-verifies on the device when the address changes", func() {
			mockRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockProbe.EXPECT().
				FetchSensorsInfo(gomock.Any(), device).
				Return(documentWith(domain.SensorKindDS18B20, "28ff9999"), nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			address := "28ff9999"
			updated, err := service.UpdateSensor(ctx, sensor.ID, usecases.SensorUpdateCommand{Address: &address})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Address).To(Equal("28ff9999"))
		})

		It("refuses a new address the device does not report", func() {
			mockRepo.EXPECT().Get(gomock.Any(), sensor.ID).Return(sensor, nil)
			mockDeviceRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockProbe.EXPECT().
				FetchSensorsInfo(gomock.Any(), device).
				Return(documentWith(domain.SensorKindDS18B20, "28ff4a1c"), nil)

			address := "28ff9999"
			_, err := service.UpdateSensor(ctx, sensor.ID, usecases.SensorUpdateCommand{Address: &address})
			Expect(err).To(MatchError(usecases.ErrSensorUnavailable))
		})
	})
})
