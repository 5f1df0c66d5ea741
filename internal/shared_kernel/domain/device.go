package domain

import (
	"time"

	"sensorhub-server/internal/infra/utils"
)

const _authKeyBytes = 16

type Device struct {
	ID      ID
	Name    string
	Address string
	AuthKey string
	// PollingInterval is how often the dispatcher polls this device.
	PollingInterval time.Duration
	ChipID          string
	ChipModel       int
	ChipRevision    int
	RegisteredAt    utils.Time
	Sensors         []Sensor
	RemoteSensors   []RemoteSensor
}

func (d *Device) UpdateName(name string) {
	d.Name = name
}

func (d *Device) UpdateAddress(address string) {
	d.Address = address
}

func (d *Device) UpdatePollingInterval(interval time.Duration) {
	d.PollingInterval = interval
}

func NewDeviceBuilder() *deviceBuilder {
	return &deviceBuilder{}
}

type deviceBuilder struct {
	actions []deviceHandler
}

type deviceHandler func(d *Device) error

func (b *deviceBuilder) WithName(value string) *deviceBuilder {
	b.actions = append(b.actions, func(d *Device) error {
		d.Name = value
		return nil
	})
	return b
}

func (b *deviceBuilder) WithAddress(value string) *deviceBuilder {
	b.actions = append(b.actions, func(d *Device) error {
		d.Address = value
		return nil
	})
	return b
}

func (b *deviceBuilder) WithAuthKey(value string) *deviceBuilder {
	b.actions = append(b.actions, func(d *Device) error {
		d.AuthKey = value
		return nil
	})
	return b
}

func (b *deviceBuilder) WithPollingInterval(value time.Duration) *deviceBuilder {
	b.actions = append(b.actions, func(d *Device) error {
		d.PollingInterval = value
		return nil
	})
	return b
}

func (b *deviceBuilder) WithChipInfo(chipID string, model, revision int) *deviceBuilder {
	b.actions = append(b.actions, func(d *Device) error {
		d.ChipID = chipID
		d.ChipModel = model
		d.ChipRevision = revision
		return nil
	})
	return b
}

func (b *deviceBuilder) Build() (Device, error) {
	result := Device{
		ID:           ID(utils.GenerateUUID()),
		AuthKey:      utils.GenerateHEX(_authKeyBytes),
		RegisteredAt: utils.Time{Time: time.Now()},
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Device{}, err
		}
	}
	return result, nil
}
