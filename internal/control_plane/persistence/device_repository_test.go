package persistence_test

import (
	"context"
	"fmt"
	"time"

	"sensorhub-server/internal/control_plane/persistence"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/infra/sql"
	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newTestDevice(name string) domain.Device {
	device, err := domain.NewDeviceBuilder().
		WithName(name).
		WithAddress(fmt.Sprintf("10.0.0.1:%s", utils.GenerateUUID())).
		WithAuthKey("SECRET123").
		WithPollingInterval(30 * time.Second).
		WithChipInfo("A1B2C3", 1, 2).
		Build()
	Expect(err).NotTo(HaveOccurred())
	return device
}

var _ = Describe("DeviceRepository", func() {
	var (
		repo *persistence.SimpleDeviceRepository
		ctx  context.Context
	)

	BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		Expect(err).NotTo(HaveOccurred())
		repo, err = persistence.NewDeviceRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("round-trips a device", func() {
		device := newTestDevice("greenhouse")
		Expect(repo.Create(ctx, device)).To(Succeed())

		found, err := repo.Get(ctx, device.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("greenhouse"))
		Expect(found.Address).To(Equal(device.Address))
		Expect(found.AuthKey).To(Equal("SECRET123"))
		Expect(found.PollingInterval).To(Equal(30 * time.Second))
		Expect(found.ChipID).To(Equal("A1B2C3"))
	})

	It("rejects a second device at the same address", func() {
		device := newTestDevice("greenhouse")
		Expect(repo.Create(ctx, device)).To(Succeed())

		duplicate := newTestDevice("barn")
		duplicate.Address = device.Address
		Expect(repo.Create(ctx, duplicate)).To(MatchError(usecases.ErrDeviceDuplicated))
	})

	It("finds a device by address", func() {
		device := newTestDevice("greenhouse")
		Expect(repo.Create(ctx, device)).To(Succeed())

		found, err := repo.FindByAddress(ctx, device.Address)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(device.ID))
	})

	It("updates an existing device", func() {
		device := newTestDevice("greenhouse")
		Expect(repo.Create(ctx, device)).To(Succeed())

		device.UpdateName("barn")
		device.UpdatePollingInterval(time.Minute)
		Expect(repo.Update(ctx, device)).To(Succeed())

		found, err := repo.Get(ctx, device.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("barn"))
		Expect(found.PollingInterval).To(Equal(time.Minute))
	})

	It("refuses to update an unknown device", func() {
		device := newTestDevice("ghost")
		Expect(repo.Update(ctx, device)).To(MatchError(usecases.ErrDeviceNotFound))
	})

	It("deletes a device", func() {
		device := newTestDevice("greenhouse")
		Expect(repo.Create(ctx, device)).To(Succeed())
		Expect(repo.Delete(ctx, device.ID)).To(Succeed())

		_, err := repo.Get(ctx, device.ID)
		Expect(err).To(MatchError(usecases.ErrDeviceNotFound))
	})

	It("paginates the full roster", func() {
		created := make([]domain.Device, 3)
		for i := range created {
			created[i] = newTestDevice(fmt.Sprintf("device-%d", i))
			Expect(repo.Create(ctx, created[i])).To(Succeed())
		}

		page, total, err := repo.FindAll(ctx, usecases.Pagination{Limit: 2, Offset: 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically(">=", 3))
		Expect(page).To(HaveLen(2))

		rest, _, err := repo.FindAll(ctx, usecases.Pagination{Limit: total, Offset: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(len(rest)).To(Equal(total - 2))
	})
})
