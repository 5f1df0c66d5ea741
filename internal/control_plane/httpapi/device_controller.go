package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"sensorhub-server/internal/control_plane/httpapi/internal"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/httpserver"
	"sensorhub-server/internal/shared_kernel/domain"
)

const (
	registerDeviceErrMessage = "failed to register device"
	updateDeviceErrMessage   = "failed to update device"
)

// WorkerPool is the dispatcher surface the controllers drive to keep the
// polling pool consistent with catalog changes.
type WorkerPool interface {
	FindWorker(deviceID domain.ID) (*dispatcher.Worker, error)
	ReloadWorker(ctx context.Context, deviceID domain.ID) error
	RemoveWorker(ctx context.Context, deviceID domain.ID, removeSampleHistory bool) error
}

var _ WorkerPool = (*dispatcher.Dispatcher)(nil)

func NewDeviceController(service usecases.DeviceService, workers WorkerPool) *DeviceController {
	return &DeviceController{
		service: service,
		workers: workers,
	}
}

var _ httpserver.Controller = &DeviceController{}

type DeviceController struct {
	service usecases.DeviceService
	workers WorkerPool
}

func (c *DeviceController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /devices", c.listDevices())
	router.Handle("POST /devices", c.registerDevice())
	router.Handle("GET /devices/{id}", c.getDevice())
	router.Handle("PUT /devices/{id}", c.updateDevice())
	router.Handle("DELETE /devices/{id}", c.unregisterDevice())
	router.Handle("POST /devices/{id}/restart", c.restartDevice())
}

func (c *DeviceController) listDevices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  params.Limit,
			Offset: (params.Page - 1) * params.Limit,
		}

		devices, total, err := c.service.AllDevices(r.Context(), pagination)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list devices")
			return
		}

		responses := make([]internal.DeviceResponse, len(devices))
		for i, device := range devices {
			responses[i] = internal.FromDevice(device)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *DeviceController) registerDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.DeviceRegisterRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, registerDeviceErrMessage)
			return
		}

		device, err := c.service.RegisterDevice(r.Context(), usecases.RegisterDeviceCommand{
			Name:            body.Name,
			Address:         body.Address,
			PollingInterval: internal.Milliseconds(body.PollingIntervalMS),
		})
		switch {
		case errors.Is(err, usecases.ErrDeviceAlreadyRegistered):
			httpserver.ReplyWithError(w, http.StatusConflict, "device already registered")
			return
		case errors.Is(err, usecases.ErrRegistrationRejected):
			httpserver.ReplyWithError(w, http.StatusBadGateway, "device rejected registration")
			return
		case err != nil:
			httpserver.ReplyWithError(w, http.StatusInternalServerError, registerDeviceErrMessage)
			return
		}

		if err := c.workers.ReloadWorker(r.Context(), device.ID); err != nil {
			slog.Warn("starting worker for new device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err))
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.FromDevice(device))
	}
}

func (c *DeviceController) getDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		device, err := c.service.GetDevice(r.Context(), id)
		if errors.Is(err, usecases.ErrDeviceNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not found")
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to get device")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.FromDevice(device))
	}
}

func (c *DeviceController) updateDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		var body internal.DeviceUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateDeviceErrMessage)
			return
		}

		cmd := usecases.DeviceUpdateCommand{
			Name:    body.Name,
			Address: body.Address,
		}
		if body.PollingIntervalMS != nil {
			interval := internal.Milliseconds(*body.PollingIntervalMS)
			cmd.PollingInterval = &interval
		}

		device, err := c.service.UpdateDevice(r.Context(), id, cmd)
		if errors.Is(err, usecases.ErrDeviceNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not found")
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateDeviceErrMessage)
			return
		}

		if err := c.workers.ReloadWorker(r.Context(), device.ID); err != nil {
			slog.Warn("reloading worker",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err))
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.FromDevice(device))
	}
}

func (c *DeviceController) restartDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		err := c.service.RestartDevice(r.Context(), id)
		switch {
		case errors.Is(err, usecases.ErrDeviceNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not found")
			return
		case errors.Is(err, usecases.ErrRestartFailed):
			httpserver.ReplyWithError(w, http.StatusBadGateway, "device did not accept restart")
			return
		case err != nil:
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to restart device")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *DeviceController) unregisterDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		err := c.service.UnregisterDevice(r.Context(), id)
		if errors.Is(err, usecases.ErrDeviceNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not found")
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to unregister device")
			return
		}

		err = c.workers.RemoveWorker(r.Context(), id, true)
		if err != nil && !errors.Is(err, dispatcher.ErrWorkerNotFound) {
			slog.Warn("removing worker",
				slog.String("device_id", id.String()),
				slog.Any("error", err))
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}
