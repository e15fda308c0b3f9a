package device

import (
	"fmt"
	"strconv"
)

type FanSpeed uint8

const (
	FanSpeed0 FanSpeed = iota
	FanSpeed1
	FanSpeed2
	FanSpeed3
	FanSpeed4
	FanSpeed5
)

// FanSpeeds lists every valid speed in ascending order.
var FanSpeeds = []FanSpeed{FanSpeed0, FanSpeed1, FanSpeed2, FanSpeed3, FanSpeed4, FanSpeed5}

func ParseFanSpeed(v string) (FanSpeed, error) {
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return FanSpeed0, fmt.Errorf("%w: %q", ErrInvalidFanSpeed, v)
	}

	s := FanSpeed(n)
	if !s.Valid() {
		return FanSpeed0, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidFanSpeed, n, FanSpeed0, FanSpeed5)
	}

	return s, nil
}

func (s FanSpeed) Valid() bool {
	return s <= FanSpeed5
}

// IsOn reports whether a fan running at this speed counts as switched on.
func (s FanSpeed) IsOn() bool {
	return s > FanSpeed0
}

func (s FanSpeed) String() string {
	return "Speed" + strconv.Itoa(int(s))
}

// *flag.Value
func (s *FanSpeed) Set(v string) error {
	parsed, err := ParseFanSpeed(v)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
