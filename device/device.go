package device

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidConfig   = errors.New("invalid device config")
	ErrInvalidFanSpeed = errors.New("invalid fan speed")
	ErrUnknownFamily   = errors.New("unknown device family")
)

// Kind identifies which capability a device implements.
type Kind string

const (
	KindLightBulb Kind = "light_bulb"
	KindFan       Kind = "fan"
)

type Device interface {
	ID() uuid.UUID
	Kind() Kind
	Config() Config
	IsSwitchedOn() (bool, error)
	String() string
}

// LightBulb is a device with a plain on/off switch.
type LightBulb interface {
	Device
	// Switch assigns the requested state and reports whether the command was accepted.
	Switch(on bool) (bool, error)
}

// Fan is a device whose on/off state is derived from its speed: it is on whenever
// the speed is above FanSpeed0.
type Fan interface {
	Device
	Switch(speed FanSpeed) (bool, error)
	Speed() FanSpeed
}
