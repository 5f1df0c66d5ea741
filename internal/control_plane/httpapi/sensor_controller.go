package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"sensorhub-server/internal/control_plane/httpapi/internal"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/httpserver"
	"sensorhub-server/internal/shared_kernel/domain"
)

const (
	registerSensorErrMessage = "failed to register sensor"
	updateSensorErrMessage   = "failed to update sensor"
)

func NewSensorController(service usecases.SensorService, workers WorkerPool) *SensorController {
	return &SensorController{
		service: service,
		workers: workers,
	}
}

var _ httpserver.Controller = &SensorController{}

type SensorController struct {
	service usecases.SensorService
	workers WorkerPool
}

func (c *SensorController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /devices/{device_id}/sensors", c.listSensors())
	router.Handle("POST /devices/{device_id}/sensors", c.registerSensor())
	router.Handle("GET /devices/{device_id}/sensors/data", c.liveData())
	router.Handle("GET /devices/{device_id}/sensors/{id}/samples", c.sampleHistory())
	router.Handle("PUT /sensors/{id}", c.updateSensor())
	router.Handle("DELETE /sensors/{id}", c.unregisterSensor())
}

func (c *SensorController) listSensors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))

		sensors, err := c.service.SensorsByDevice(r.Context(), deviceID)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list sensors")
			return
		}

		responses := make([]internal.SensorResponse, len(sensors))
		for i, sensor := range sensors {
			responses[i] = internal.FromSensor(sensor)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *SensorController) registerSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))

		var body internal.SensorRegisterRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, registerSensorErrMessage)
			return
		}

		sensor, err := c.service.RegisterSensor(r.Context(), usecases.RegisterSensorCommand{
			DeviceID:        deviceID,
			Name:            body.Name,
			Kind:            domain.SensorKind(body.Kind),
			Address:         body.Address,
			RetentionWindow: internal.Milliseconds(body.RetentionWindowMS),
		})
		switch {
		case errors.Is(err, usecases.ErrDeviceNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not found")
			return
		case errors.Is(err, usecases.ErrSensorDuplicated):
			httpserver.ReplyWithError(w, http.StatusConflict, "sensor already registered")
			return
		case errors.Is(err, usecases.ErrSensorUnavailable):
			httpserver.ReplyWithError(w, http.StatusBadRequest, "sensor unavailable on device")
			return
		case errors.Is(err, usecases.ErrSensorListUnavailable):
			httpserver.ReplyWithError(w, http.StatusServiceUnavailable, "could not retrieve sensor list")
			return
		case err != nil:
			httpserver.ReplyWithError(w, http.StatusInternalServerError, registerSensorErrMessage)
			return
		}

		c.trackSensor(r, deviceID, sensor)

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.FromSensor(sensor))
	}
}

// trackSensor makes the running worker pick up a catalog change without
// waiting for a reload. Worker absence is not an error here; the device
// may be mid-reload.
func (c *SensorController) trackSensor(r *http.Request, deviceID domain.ID, sensor domain.Sensor) {
	worker, err := c.workers.FindWorker(deviceID)
	if err != nil {
		slog.Warn("no worker for new sensor", slog.String("device_id", deviceID.String()))
		return
	}
	if err := worker.AddSensor(sensor); err != nil {
		slog.Warn("tracking sensor",
			slog.String("sensor_id", sensor.ID.String()),
			slog.Any("error", err))
	}
}

func (c *SensorController) updateSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		var body internal.SensorUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateSensorErrMessage)
			return
		}

		cmd := usecases.SensorUpdateCommand{
			Name:    body.Name,
			Address: body.Address,
		}
		if body.Kind != nil {
			kind := domain.SensorKind(*body.Kind)
			cmd.Kind = &kind
		}
		if body.RetentionWindowMS != nil {
			window := internal.Milliseconds(*body.RetentionWindowMS)
			cmd.RetentionWindow = &window
		}

		sensor, err := c.service.UpdateSensor(r.Context(), id, cmd)
		switch {
		case errors.Is(err, usecases.ErrSensorNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, "sensor not found")
			return
		case errors.Is(err, usecases.ErrSensorUnavailable):
			httpserver.ReplyWithError(w, http.StatusBadRequest, "sensor unavailable on device")
			return
		case errors.Is(err, usecases.ErrSensorListUnavailable):
			httpserver.ReplyWithError(w, http.StatusServiceUnavailable, "could not retrieve sensor list")
			return
		case err != nil:
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateSensorErrMessage)
			return
		}

		if worker, err := c.workers.FindWorker(sensor.DeviceID); err == nil {
			if err := worker.UpdateSensor(sensor); err != nil {
				slog.Warn("updating tracked sensor",
					slog.String("sensor_id", sensor.ID.String()),
					slog.Any("error", err))
			}
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.FromSensor(sensor))
	}
}

func (c *SensorController) unregisterSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		sensor, err := c.service.UnregisterSensor(r.Context(), id)
		if errors.Is(err, usecases.ErrSensorNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, "sensor not found")
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to unregister sensor")
			return
		}

		if worker, err := c.workers.FindWorker(sensor.DeviceID); err == nil {
			if err := worker.RemoveSensor(r.Context(), sensor.ID, true); err != nil {
				slog.Warn("untracking sensor",
					slog.String("sensor_id", sensor.ID.String()),
					slog.Any("error", err))
			}
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *SensorController) liveData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))

		worker, err := c.workers.FindWorker(deviceID)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not dispatched")
			return
		}

		states := worker.SensorsData()
		if sensorID := r.URL.Query().Get("sensor_id"); sensorID != "" {
			state, err := worker.FindSensor(domain.ID(sensorID))
			if err != nil {
				httpserver.ReplyWithError(w, http.StatusNotFound, "sensor not dispatched")
				return
			}
			states = []dispatcher.SensorState{state}
		}

		data := make(map[string]domain.SensorReading, len(states))
		for _, state := range states {
			data[state.Sensor.ID.String()] = state.Data
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SensorDataResponse{
			DeviceOnline: worker.Online(),
			Data:         data,
		})
	}
}

func (c *SensorController) sampleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))
		sensorID := domain.ID(r.PathValue("id"))

		worker, err := c.workers.FindWorker(deviceID)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, "device not dispatched")
			return
		}

		state, err := worker.FindSensor(sensorID)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, "sensor not dispatched")
			return
		}

		// Default to everything the sensor retains.
		maxAge := state.Sensor.RetentionWindow
		if raw := r.URL.Query().Get("max_age_ms"); raw != "" {
			ms, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || ms < 0 {
				httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid max_age_ms")
				return
			}
			maxAge = internal.Milliseconds(ms)
		}

		samples, err := worker.GetSamples(r.Context(), sensorID, maxAge)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to load samples")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SampleHistoryResponse{Samples: samples})
	}
}
