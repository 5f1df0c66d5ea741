package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"sensorhub-server/internal/control_plane/httpapi"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/infra/httpserver"
	"sensorhub-server/internal/shared_kernel/domain"
	mockusecases "sensorhub-server/test/unit/doubles/control_plane/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DeviceController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockDeviceService
		pool        *stubWorkerPool
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockDeviceService(ctrl)
		pool = &stubWorkerPool{}
		router = http.NewServeMux()
		httpapi.NewDeviceController(mockService, pool).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("GET /devices", func() {
		It("lists devices with default pagination", func() {
			devices := []domain.Device{
				{ID: domain.ID("device-1"), Name: "greenhouse"},
				{ID: domain.ID("device-2"), Name: "barn"},
			}
			mockService.EXPECT().
				AllDevices(gomock.Any(), usecases.Pagination{Limit: 10, Offset: 0}).
				Return(devices, 2, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/devices", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(2))
			data, ok := response.Data.([]any)
			Expect(ok).To(BeTrue())
			Expect(data).To(HaveLen(2))
		})

		It("translates page and limit into an offset", func() {
			mockService.EXPECT().
				AllDevices(gomock.Any(), usecases.Pagination{Limit: 5, Offset: 10}).
				Return(nil, 0, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/devices?page=3&limit=5", nil))
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("POST /devices", func() {
		body := `{"name":"greenhouse","address":"10.0.0.42","polling_interval_ms":30000}`

		It("registers the device and starts its worker", func() {
			device := domain.Device{
				ID:              domain.ID("device-1"),
				Name:            "greenhouse",
				Address:         "10.0.0.42",
				PollingInterval: 30 * time.Second,
			}
			mockService.EXPECT().
				RegisterDevice(gomock.Any(), usecases.RegisterDeviceCommand{
					Name:            "greenhouse",
					Address:         "10.0.0.42",
					PollingInterval: 30 * time.Second,
				}).
				Return(device, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(pool.reloaded).To(Equal([]domain.ID{device.ID}))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("auth_key"))
		})

		It("maps an already registered device to 409", func() {
			mockService.EXPECT().
				RegisterDevice(gomock.Any(), gomock.Any()).
				Return(domain.Device{}, usecases.ErrDeviceAlreadyRegistered)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices", strings.NewReader(body)))
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("maps a rejected registration to 502", func() {
			mockService.EXPECT().
				RegisterDevice(gomock.Any(), gomock.Any()).
				Return(domain.Device{}, usecases.ErrRegistrationRejected)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices", strings.NewReader(body)))
			Expect(recorder.Code).To(Equal(http.StatusBadGateway))
		})

		It("rejects a malformed body", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices", strings.NewReader("{")))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET /devices/{id}", func() {
		It("returns 404 for an unknown device", func() {
			mockService.EXPECT().
				GetDevice(gomock.Any(), domain.ID("missing")).
				Return(domain.Device{}, usecases.ErrDeviceNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/devices/missing", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("PUT /devices/{id}", func() {
		It("updates and reloads the worker", func() {
			name := "barn"
			mockService.EXPECT().
				UpdateDevice(gomock.Any(), domain.ID("device-1"), usecases.DeviceUpdateCommand{Name: &name}).
				Return(domain.Device{ID: domain.ID("device-1"), Name: "barn"}, nil)

			request := httptest.NewRequest("PUT", "/devices/device-1", strings.NewReader(`{"name":"barn"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(pool.reloaded).To(Equal([]domain.ID{domain.ID("device-1")}))
		})
	})

	Context("POST /devices/{id}/restart", func() {
		It("relays the restart and returns no content", func() {
			mockService.EXPECT().
				RestartDevice(gomock.Any(), domain.ID("device-1")).
				Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices/device-1/restart", nil))
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("returns 404 for an unknown device", func() {
			mockService.EXPECT().
				RestartDevice(gomock.Any(), domain.ID("missing")).
				Return(usecases.ErrDeviceNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices/missing/restart", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("maps a refused restart to 502", func() {
			mockService.EXPECT().
				RestartDevice(gomock.Any(), domain.ID("device-1")).
				Return(usecases.ErrRestartFailed)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/devices/device-1/restart", nil))
			Expect(recorder.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Context("DELETE /devices/{id}", func() {
		It("unregisters and purges the worker with its history", func() {
			mockService.EXPECT().
				UnregisterDevice(gomock.Any(), domain.ID("device-1")).
				Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/devices/device-1", nil))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
			Expect(pool.removed).To(Equal([]domain.ID{domain.ID("device-1")}))
			Expect(pool.removedHistory).To(Equal([]bool{true}))
		})
	})
})
