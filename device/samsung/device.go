package samsung

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robertof/go-factory-demos/device"
	"github.com/rs/zerolog/log"
)

// The Samsung API reports bulb power as a string.
const (
	powerOn  = "on"
	powerOff = "off"
)

type LightBulb struct {
	id    uuid.UUID
	cfg   device.Config
	power string
}

func newLightBulb(cfg device.Config) *LightBulb {
	return &LightBulb{
		id:    uuid.New(),
		cfg:   cfg,
		power: powerOff,
	}
}

func (b *LightBulb) ID() uuid.UUID {
	return b.id
}

func (b *LightBulb) Kind() device.Kind {
	return device.KindLightBulb
}

func (b *LightBulb) Config() device.Config {
	return b.cfg
}

func (b *LightBulb) IsSwitchedOn() (bool, error) {
	log.Debug().Stringer("Device", b).Msg("samsung: light bulb state")

	return b.power == powerOn, nil
}

func (b *LightBulb) Switch(on bool) (bool, error) {
	prev := b.power

	if on {
		b.power = powerOn
	} else {
		b.power = powerOff
	}

	log.Info().
		Stringer("Device", b).
		Str("PrevPower", prev).
		Str("Power", b.power).
		Msg("samsung: switched light bulb")

	return true, nil
}

func (b *LightBulb) String() string {
	return fmt.Sprintf("samsung.LightBulb[id=%v, config=%v, power=%s]", b.id, b.cfg, b.power)
}

type Fan struct {
	id    uuid.UUID
	cfg   device.Config
	level device.FanSpeed
}

func newFan(cfg device.Config) *Fan {
	return &Fan{
		id:    uuid.New(),
		cfg:   cfg,
		level: device.FanSpeed0,
	}
}

func (f *Fan) ID() uuid.UUID {
	return f.id
}

func (f *Fan) Kind() device.Kind {
	return device.KindFan
}

func (f *Fan) Config() device.Config {
	return f.cfg
}

func (f *Fan) Speed() device.FanSpeed {
	return f.level
}

func (f *Fan) IsSwitchedOn() (bool, error) {
	log.Debug().Stringer("Device", f).Msg("samsung: fan state")

	return f.level.IsOn(), nil
}

func (f *Fan) Switch(speed device.FanSpeed) (bool, error) {
	if !speed.Valid() {
		return false, errors.Wrapf(device.ErrInvalidFanSpeed, "samsung: level %d", uint8(speed))
	}

	prev := f.level
	f.level = speed

	log.Info().
		Stringer("Device", f).
		Stringer("PrevLevel", prev).
		Stringer("Level", f.level).
		Msg("samsung: switched fan")

	return true, nil
}

func (f *Fan) String() string {
	return fmt.Sprintf("samsung.Fan[id=%v, config=%v, level=%v]", f.id, f.cfg, f.level)
}
