package device_test

import (
	"flag"
	"testing"

	"github.com/robertof/go-factory-demos/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFanSpeed(t *testing.T) {
	for _, want := range device.FanSpeeds {
		got, err := device.ParseFanSpeed(want.String()[len("Speed"):])

		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseFanSpeed_Invalid(t *testing.T) {
	for _, v := range []string{"6", "-1", "fast", "", "256"} {
		_, err := device.ParseFanSpeed(v)

		assert.ErrorIs(t, err, device.ErrInvalidFanSpeed, "ParseFanSpeed(%q)", v)
	}
}

func TestFanSpeed_IsOnFollowsOrdering(t *testing.T) {
	for _, s := range device.FanSpeeds {
		assert.Equal(t, s > device.FanSpeed0, s.IsOn(), "speed %v", s)
	}
}

func TestFanSpeed_FlagValue(t *testing.T) {
	speed := device.FanSpeed4

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&speed, "speed", "")

	require.NoError(t, fs.Parse([]string{"-speed", "2"}))
	assert.Equal(t, device.FanSpeed2, speed)

	assert.Error(t, fs.Parse([]string{"-speed", "9"}))
}
