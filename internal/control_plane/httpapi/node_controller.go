package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sensorhub-server/internal/control_plane/httpapi/internal"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/httpserver"
	"sensorhub-server/internal/shared_kernel/domain"
)

const subscribeErrMessage = "failed to subscribe remote sensor"

// NodeController serves display nodes: managing their subscriptions to
// other devices' sensors and syncing the run-length optimized sample
// windows they render.
func NewNodeController(
	service usecases.RemoteSensorService,
	sensorService usecases.SensorService,
	workers WorkerPool,
) *NodeController {
	return &NodeController{
		service:       service,
		sensorService: sensorService,
		workers:       workers,
	}
}

var _ httpserver.Controller = &NodeController{}

type NodeController struct {
	service       usecases.RemoteSensorService
	sensorService usecases.SensorService
	workers       WorkerPool
}

func (c *NodeController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /nodes/{device_id}/remote-sensors", c.listRemoteSensors())
	router.Handle("POST /nodes/{device_id}/remote-sensors", c.subscribe())
	router.Handle("PUT /nodes/remote-sensors/{id}", c.updateSubscription())
	router.Handle("DELETE /nodes/remote-sensors/{id}", c.unsubscribe())
	router.Handle("GET /nodes/{device_id}/sync", c.sync())
}

func (c *NodeController) listRemoteSensors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))

		remoteSensors, err := c.service.FindByDevice(r.Context(), deviceID)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list remote sensors")
			return
		}

		responses := make([]internal.RemoteSensorResponse, len(remoteSensors))
		for i, remoteSensor := range remoteSensors {
			responses[i] = internal.FromRemoteSensor(remoteSensor)
			if sensor, err := c.sensorService.GetSensor(r.Context(), remoteSensor.SensorID); err == nil {
				responses[i].SensorName = sensor.Name
				responses[i].SensorKind = string(sensor.Kind)
			}
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *NodeController) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))

		var body internal.RemoteSensorRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, subscribeErrMessage)
			return
		}

		remoteSensor, err := c.service.Create(r.Context(), usecases.RemoteSensorCommand{
			DeviceID:        deviceID,
			SensorID:        domain.ID(body.SensorID),
			PollingInterval: internal.Milliseconds(body.PollingIntervalMS),
			MaxSampleAge:    internal.Milliseconds(body.MaxSampleAgeMS),
			Fields:          body.DomainFields(),
		})
		if replied := c.replySubscriptionError(w, err); replied {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.FromRemoteSensor(remoteSensor))
	}
}

func (c *NodeController) replySubscriptionError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, usecases.ErrDeviceNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, "device not found")
	case errors.Is(err, usecases.ErrSensorNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, "sensor not found")
	case errors.Is(err, usecases.ErrRemoteSensorNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, "remote sensor not found")
	case errors.Is(err, usecases.ErrSampleAgeExceedsRetention):
		httpserver.ReplyWithError(w, http.StatusBadRequest, "max sample age exceeds sensor retention window")
	default:
		httpserver.ReplyWithError(w, http.StatusInternalServerError, subscribeErrMessage)
	}
	return true
}

func (c *NodeController) updateSubscription() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		var body internal.RemoteSensorRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, subscribeErrMessage)
			return
		}

		existing, err := c.service.Get(r.Context(), id)
		if errors.Is(err, usecases.ErrRemoteSensorNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, "remote sensor not found")
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, subscribeErrMessage)
			return
		}

		remoteSensor, err := c.service.Update(r.Context(), id, usecases.RemoteSensorCommand{
			DeviceID:        existing.DeviceID,
			SensorID:        domain.ID(body.SensorID),
			PollingInterval: internal.Milliseconds(body.PollingIntervalMS),
			MaxSampleAge:    internal.Milliseconds(body.MaxSampleAgeMS),
			Fields:          body.DomainFields(),
		})
		if replied := c.replySubscriptionError(w, err); replied {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.FromRemoteSensor(remoteSensor))
	}
}

func (c *NodeController) unsubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("id"))

		err := c.service.Delete(r.Context(), id)
		if errors.Is(err, usecases.ErrRemoteSensorNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, "remote sensor not found")
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to unsubscribe")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

// sync returns one optimized series per subscription, keyed by remote
// sensor ID. A subscription whose source cannot be served right now
// degrades to {"error": true} instead of failing the whole response, so
// a display keeps rendering its healthy panels.
func (c *NodeController) sync() http.HandlerFunc {
	type syncError struct {
		Error bool `json:"error"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := domain.ID(r.PathValue("device_id"))

		var since time.Time
		if raw := r.URL.Query().Get("since"); raw != "" {
			ms, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || ms < 0 {
				httpserver.ReplyWithError(w, http.StatusBadRequest, "since must be a unix millisecond timestamp")
				return
			}
			since = time.UnixMilli(ms)
		}

		remoteSensors, err := c.service.FindByDevice(r.Context(), deviceID)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list remote sensors")
			return
		}

		if filter := r.URL.Query().Get("remote_sensor_id"); filter != "" {
			filtered := remoteSensors[:0]
			for _, remoteSensor := range remoteSensors {
				if remoteSensor.ID.String() == filter {
					filtered = append(filtered, remoteSensor)
				}
			}
			if len(filtered) == 0 {
				httpserver.ReplyWithError(w, http.StatusNotFound, "remote sensor not found")
				return
			}
			remoteSensors = filtered
		}

		result := make(map[string]any, len(remoteSensors))
		for _, remoteSensor := range remoteSensors {
			series, err := c.syncOne(r, remoteSensor, since)
			if err != nil {
				slog.Warn("syncing remote sensor",
					slog.String("remote_sensor_id", remoteSensor.ID.String()),
					slog.Any("error", err))
				result[remoteSensor.ID.String()] = syncError{Error: true}
				continue
			}
			result[remoteSensor.ID.String()] = series
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, result)
	}
}

func (c *NodeController) syncOne(r *http.Request, remoteSensor domain.RemoteSensor, since time.Time) (dispatcher.OptimizedSeries, error) {
	sensor, err := c.sensorService.GetSensor(r.Context(), remoteSensor.SensorID)
	if err != nil {
		return dispatcher.OptimizedSeries{}, err
	}

	worker, err := c.workers.FindWorker(sensor.DeviceID)
	if err != nil {
		return dispatcher.OptimizedSeries{}, err
	}

	age := remoteSensor.MaxSampleAge
	if !since.IsZero() {
		age = min(age, time.Since(since))
	}

	samples, err := worker.GetSamples(r.Context(), remoteSensor.SensorID, age)
	if err != nil {
		return dispatcher.OptimizedSeries{}, err
	}

	return dispatcher.OptimizeSamples(samples, remoteSensor.FieldNames())
}
