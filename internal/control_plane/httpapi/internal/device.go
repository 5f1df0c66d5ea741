package internal

import (
	"time"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

type DeviceRegisterRequest struct {
	Name              string `json:"name"`
	Address           string `json:"address"`
	PollingIntervalMS int64  `json:"polling_interval_ms"`
}

type DeviceUpdateRequest struct {
	Name              *string `json:"name,omitempty"`
	Address           *string `json:"address,omitempty"`
	PollingIntervalMS *int64  `json:"polling_interval_ms,omitempty"`
}

// DeviceResponse deliberately omits the auth key; it never leaves the
// server once installed.
type DeviceResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Address           string           `json:"address"`
	PollingIntervalMS int64            `json:"polling_interval_ms"`
	ChipID            string           `json:"chip_id"`
	ChipModel         int              `json:"chip_model"`
	ChipRevision      int              `json:"chip_revision"`
	RegisteredAt      utils.Time       `json:"registered_at"`
	Sensors           []SensorResponse `json:"sensors,omitempty"`
}

func FromDevice(device domain.Device) DeviceResponse {
	response := DeviceResponse{
		ID:                device.ID.String(),
		Name:              device.Name,
		Address:           device.Address,
		PollingIntervalMS: device.PollingInterval.Milliseconds(),
		ChipID:            device.ChipID,
		ChipModel:         device.ChipModel,
		ChipRevision:      device.ChipRevision,
		RegisteredAt:      device.RegisteredAt,
	}
	for _, sensor := range device.Sensors {
		response.Sensors = append(response.Sensors, FromSensor(sensor))
	}
	return response
}

func Milliseconds(value int64) time.Duration {
	return time.Duration(value) * time.Millisecond
}
