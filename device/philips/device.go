package philips

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robertof/go-factory-demos/device"
	"github.com/rs/zerolog/log"
)

// dutyPerSpeed converts a fan speed level into the duty cycle percentage used by
// the Philips bridge.
const dutyPerSpeed = 20

type LightBulb struct {
	id     uuid.UUID
	bridge device.Config
	on     bool
}

func newLightBulb(bridge device.Config) *LightBulb {
	return &LightBulb{id: uuid.New(), bridge: bridge}
}

func (b *LightBulb) ID() uuid.UUID {
	return b.id
}

func (b *LightBulb) Kind() device.Kind {
	return device.KindLightBulb
}

func (b *LightBulb) Config() device.Config {
	return b.bridge
}

func (b *LightBulb) IsSwitchedOn() (bool, error) {
	log.Debug().Stringer("Device", b).Msg("philips: light bulb state")

	return b.on, nil
}

func (b *LightBulb) Switch(on bool) (bool, error) {
	log.Info().Stringer("Device", b).Msg("philips: light bulb prev state")

	b.on = on

	log.Info().Stringer("Device", b).Msg("philips: light bulb new state")

	return true, nil
}

func (b *LightBulb) String() string {
	return fmt.Sprintf("philips.LightBulb[id=%v, bridge=%v, on=%t]", b.id, b.bridge, b.on)
}

type Fan struct {
	id     uuid.UUID
	bridge device.Config
	speed  device.FanSpeed
}

func newFan(bridge device.Config) *Fan {
	return &Fan{id: uuid.New(), bridge: bridge, speed: device.FanSpeed0}
}

func (f *Fan) ID() uuid.UUID {
	return f.id
}

func (f *Fan) Kind() device.Kind {
	return device.KindFan
}

func (f *Fan) Config() device.Config {
	return f.bridge
}

func (f *Fan) Speed() device.FanSpeed {
	return f.speed
}

func (f *Fan) IsSwitchedOn() (bool, error) {
	log.Debug().Stringer("Device", f).Msg("philips: fan state")

	return f.speed > device.FanSpeed0, nil
}

func (f *Fan) Switch(speed device.FanSpeed) (bool, error) {
	if !speed.Valid() {
		return false, errors.Wrapf(device.ErrInvalidFanSpeed, "philips: speed %d", uint8(speed))
	}

	log.Info().Stringer("Device", f).Msg("philips: fan prev state")

	f.speed = speed

	log.Info().Stringer("Device", f).Msg("philips: fan new state")

	return true, nil
}

func (f *Fan) String() string {
	return fmt.Sprintf("philips.Fan[id=%v, bridge=%v, speed=%v, duty=%d%%]",
		f.id, f.bridge, f.speed, int(f.speed)*dutyPerSpeed)
}
