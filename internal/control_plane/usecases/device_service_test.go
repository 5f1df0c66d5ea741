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

var _ = Describe("DeviceService", func() {
	var (
		ctrl            *gomock.Controller
		mockRepo        *mockusecases.MockDeviceRepository
		mockSensorRepo  *mockusecases.MockSensorRepository
		mockProvisioner *mockusecases.MockDeviceProvisioner
		service         *usecases.SimpleDeviceService
		ctx             context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepo = mockusecases.NewMockDeviceRepository(ctrl)
		mockSensorRepo = mockusecases.NewMockSensorRepository(ctrl)
		mockProvisioner = mockusecases.NewMockDeviceProvisioner(ctrl)
		service = usecases.NewDeviceService(mockRepo, mockSensorRepo, mockProvisioner)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("RegisterDevice", func() {
		cmd := usecases.RegisterDeviceCommand{
			Name:            "greenhouse",
			Address:         "10.0.0.42",
			PollingInterval: 30 * time.Second,
		}

		It("provisions the device and persists it", func() {
			var installedKey string
			mockProvisioner.EXPECT().
				RegistrationInfo(gomock.Any(), "10.0.0.42").
				Return(dto.RegistrationInfo{IsRegistered: false, AuthKeyLen: 12}, nil)
			mockProvisioner.EXPECT().
				Register(gomock.Any(), "10.0.0.42", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, authKey string) error {
					installedKey = authKey
					return nil
				})
			mockProvisioner.EXPECT().
				ChipInfo(gomock.Any(), "10.0.0.42", gomock.Any()).
				Return(dto.ChipInfo{ChipID: "A1B2C3", Model: 1, Revision: 2}, nil)
			mockRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil)

			device, err := service.RegisterDevice(ctx, cmd)
			Expect(err).NotTo(HaveOccurred())
			Expect(device.ID).NotTo(BeEmpty())
			Expect(device.Name).To(Equal("greenhouse"))
			Expect(device.Address).To(Equal("10.0.0.42"))
			Expect(device.PollingInterval).To(Equal(30 * time.Second))
			Expect(device.ChipID).To(Equal("A1B2C3"))
			Expect(device.AuthKey).To(Equal(installedKey))
			Expect(device.AuthKey).To(HaveLen(12))
		})

		It("refuses a device that is already registered", func() {
			mockProvisioner.EXPECT().
				RegistrationInfo(gomock.Any(), "10.0.0.42").
				Return(dto.RegistrationInfo{IsRegistered: true, AuthKeyLen: 12}, nil)

			_, err := service.RegisterDevice(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrDeviceAlreadyRegistered))
		})

		It("wraps a rejected registration", func() {
			mockProvisioner.EXPECT().
				RegistrationInfo(gomock.Any(), "10.0.0.42").
				Return(dto.RegistrationInfo{AuthKeyLen: 12}, nil)
			mockProvisioner.EXPECT().
				Register(gomock.Any(), "10.0.0.42", gomock.Any()).
				Return(errors.New("code 3"))

			_, err := service.RegisterDevice(ctx, cmd)
			Expect(err).To(MatchError(usecases.ErrRegistrationRejected))
		})

		It("unregisters the device when chip info cannot be read", func() {
			var installedKey string
			mockProvisioner.EXPECT().
				RegistrationInfo(gomock.Any(), "10.0.0.42").
				Return(dto.RegistrationInfo{AuthKeyLen: 12}, nil)
			mockProvisioner.EXPECT().
				Register(gomock.Any(), "10.0.0.42", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, authKey string) error {
					installedKey = authKey
					return nil
				})
			mockProvisioner.EXPECT().
				ChipInfo(gomock.Any(), "10.0.0.42", gomock.Any()).
				Return(dto.ChipInfo{}, errors.New("connection reset"))
			mockProvisioner.EXPECT().
				Unregister(gomock.Any(), "10.0.0.42", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, authKey string) error {
					Expect(authKey).To(Equal(installedKey))
					return nil
				})

			_, err := service.RegisterDevice(ctx, cmd)
			Expect(err).To(HaveOccurred())
		})

		It("unregisters the device when persisting fails", func() {
			mockProvisioner.EXPECT().
				RegistrationInfo(gomock.Any(), "10.0.0.42").
				Return(dto.RegistrationInfo{AuthKeyLen: 12}, nil)
			mockProvisioner.EXPECT().
				Register(gomock.Any(), "10.0.0.42", gomock.Any()).
				Return(nil)
			mockProvisioner.EXPECT().
				ChipInfo(gomock.Any(), "10.0.0.42", gomock.Any()).
				Return(dto.ChipInfo{ChipID: "A1B2C3"}, nil)
			mockRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(errors.New("constraint violation"))
			mockProvisioner.EXPECT().
				Unregister(gomock.Any(), "10.0.0.42", gomock.Any()).
				Return(nil)

			_, err := service.RegisterDevice(ctx, cmd)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UnregisterDevice", func() {
		device := domain.Device{
			ID:      domain.ID("device-1"),
			Address: "10.0.0.42",
			AuthKey: "SECRET",
		}

		It("removes the device and wipes its key", func() {
			mockRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), device.ID).Return(nil)
			mockProvisioner.EXPECT().Unregister(gomock.Any(), "10.0.0.42", "SECRET").Return(nil)

			Expect(service.UnregisterDevice(ctx, device.ID)).To(Succeed())
		})

		It("still removes a device that no longer answers", func() {
			mockRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), device.ID).Return(nil)
			mockProvisioner.EXPECT().
				Unregister(gomock.Any(), "10.0.0.42", "SECRET").
				Return(errors.New("no route to host"))

			Expect(service.UnregisterDevice(ctx, device.ID)).To(Succeed())
		})

		It("propagates not found", func() {
			mockRepo.EXPECT().
				Get(gomock.Any(), domain.ID("missing")).
				Return(domain.Device{}, usecases.ErrDeviceNotFound)

			err := service.UnregisterDevice(ctx, domain.ID("missing"))
			Expect(err).To(MatchError(usecases.ErrDeviceNotFound))
		})
	})

	Describe("GetDevice", func() {
		It("attaches the device's sensors", func() {
			device := domain.Device{ID: domain.ID("device-1"), Name: "greenhouse"}
			sensors := []domain.Sensor{{ID: domain.ID("sensor-1"), Name: "soil"}}
			mockRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockSensorRepo.EXPECT().FindByDevice(gomock.Any(), device.ID).Return(sensors, nil)

			result, err := service.GetDevice(ctx, device.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Sensors).To(HaveLen(1))
			Expect(result.Sensors[0].Name).To(Equal("soil"))
		})
	})

	Describe("RestartDevice", func() {
		device := domain.Device{
			ID:      domain.ID("device-1"),
			Address: "10.0.0.42",
			AuthKey: "SECRET",
		}

		It("relays the restart to the device", func() {
			mockRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockProvisioner.EXPECT().Restart(gomock.Any(), "10.0.0.42", "SECRET").Return(nil)

			Expect(service.RestartDevice(ctx, device.ID)).To(Succeed())
		})

		It("wraps a refusal from the device", func() {
			mockRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockProvisioner.EXPECT().
				Restart(gomock.Any(), "10.0.0.42", "SECRET").
				Return(errors.New("restart refused"))

			err := service.RestartDevice(ctx, device.ID)
			Expect(err).To(MatchError(usecases.ErrRestartFailed))
		})

		It("propagates not found", func() {
			mockRepo.EXPECT().
				Get(gomock.Any(), domain.ID("missing")).
				Return(domain.Device{}, usecases.ErrDeviceNotFound)

			err := service.RestartDevice(ctx, domain.ID("missing"))
			Expect(err).To(MatchError(usecases.ErrDeviceNotFound))
		})
	})

	Describe("UpdateDevice", func() {
		It("applies only the provided fields", func() {
			device := domain.Device{
				ID:              domain.ID("device-1"),
				Name:            "greenhouse",
				Address:         "10.0.0.42",
				PollingInterval: 30 * time.Second,
			}
			mockRepo.EXPECT().Get(gomock.Any(), device.ID).Return(device, nil)
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.Device) error {
					Expect(updated.Name).To(Equal("barn"))
					Expect(updated.Address).To(Equal("10.0.0.42"))
					Expect(updated.PollingInterval).To(Equal(30 * time.Second))
					return nil
				})

			name := "barn"
			result, err := service.UpdateDevice(ctx, device.ID, usecases.DeviceUpdateCommand{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Name).To(Equal("barn"))
		})
	})
})
