package domain

import (
	"time"

	"sensorhub-server/internal/infra/utils"
)

// RemoteSensor is a subscription by one device to another device's sensor
// stream, consumed by display nodes. The dispatcher core only resolves it to
// a worker/sensor pair; presentation metadata lives in Fields.
type RemoteSensor struct {
	ID ID
	// PollingInterval is how often the consuming device should sync.
	PollingInterval time.Duration
	// MaxSampleAge bounds how far back a sync may reach.
	MaxSampleAge time.Duration
	// DeviceID is the consuming device; SensorID the source sensor.
	DeviceID ID
	SensorID ID
	Fields   []RemoteSensorField
}

type RemoteSensorField struct {
	Name     ReadingField
	Label    string
	Color    int
	Priority int
	RangeMin float64
	RangeMax float64
}

// FieldNames returns the reading fields this subscription displays, in
// declaration order.
func (rs RemoteSensor) FieldNames() []ReadingField {
	names := make([]ReadingField, 0, len(rs.Fields))
	for _, f := range rs.Fields {
		names = append(names, f.Name)
	}
	return names
}

func NewRemoteSensorBuilder() *remoteSensorBuilder {
	return &remoteSensorBuilder{}
}

type remoteSensorBuilder struct {
	actions []remoteSensorHandler
}

type remoteSensorHandler func(rs *RemoteSensor) error

func (b *remoteSensorBuilder) WithDevice(value Device) *remoteSensorBuilder {
	b.actions = append(b.actions, func(rs *RemoteSensor) error {
		rs.DeviceID = value.ID
		return nil
	})
	return b
}

func (b *remoteSensorBuilder) WithSensor(value Sensor) *remoteSensorBuilder {
	b.actions = append(b.actions, func(rs *RemoteSensor) error {
		rs.SensorID = value.ID
		return nil
	})
	return b
}

func (b *remoteSensorBuilder) WithPollingInterval(value time.Duration) *remoteSensorBuilder {
	b.actions = append(b.actions, func(rs *RemoteSensor) error {
		rs.PollingInterval = value
		return nil
	})
	return b
}

func (b *remoteSensorBuilder) WithMaxSampleAge(value time.Duration) *remoteSensorBuilder {
	b.actions = append(b.actions, func(rs *RemoteSensor) error {
		rs.MaxSampleAge = value
		return nil
	})
	return b
}

func (b *remoteSensorBuilder) WithFields(value []RemoteSensorField) *remoteSensorBuilder {
	b.actions = append(b.actions, func(rs *RemoteSensor) error {
		rs.Fields = value
		return nil
	})
	return b
}

func (b *remoteSensorBuilder) Build() (RemoteSensor, error) {
	result := RemoteSensor{
		ID: ID(utils.GenerateUUID()),
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return RemoteSensor{}, err
		}
	}
	return result, nil
}
