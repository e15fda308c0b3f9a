package main

import (
	"fmt"

	"github.com/robertof/go-factory-demos/device"
	"github.com/rs/zerolog/log"
)

// runDeviceDemo builds a factory for every entry, then creates and drives a light bulb
// and a fan from it. It returns every device created so far, even on error.
func runDeviceDemo(registry *device.Registry, entries []deviceEntry, speed device.FanSpeed) (
	[]device.Device,
	error,
) {
	var devices []device.Device

	for _, entry := range entries {
		factory, err := registry.NewFactory(entry.Family, entry.Config)
		if err != nil {
			return devices, fmt.Errorf("invalid factory %q: %w", entry.Family, err)
		}

		log.Info().
			Str("Family", entry.Family).
			Stringer("Config", factory.Config()).
			Msg("Running device demo")

		bulb, err := factory.CreateLightBulb()
		if err != nil {
			return devices, fmt.Errorf("failed to create %s light bulb: %w", entry.Family, err)
		}

		devices = append(devices, bulb)

		if err := driveLightBulb(bulb); err != nil {
			return devices, err
		}

		fan, err := factory.CreateFan()
		if err != nil {
			return devices, fmt.Errorf("failed to create %s fan: %w", entry.Family, err)
		}

		devices = append(devices, fan)

		if err := driveFan(fan, speed); err != nil {
			return devices, err
		}
	}

	return devices, nil
}

func driveLightBulb(bulb device.LightBulb) error {
	before, err := bulb.IsSwitchedOn()
	if err != nil {
		return fmt.Errorf("failed to query %v: %w", bulb, err)
	}

	if _, err := bulb.Switch(true); err != nil {
		return fmt.Errorf("failed to switch %v: %w", bulb, err)
	}

	after, err := bulb.IsSwitchedOn()
	if err != nil {
		return fmt.Errorf("failed to query %v: %w", bulb, err)
	}

	log.Info().
		Stringer("Device", bulb).
		Bool("WasSwitchedOn", before).
		Bool("SwitchedOn", after).
		Msg("Light bulb switched")

	return nil
}

func driveFan(fan device.Fan, speed device.FanSpeed) error {
	before, err := fan.IsSwitchedOn()
	if err != nil {
		return fmt.Errorf("failed to query %v: %w", fan, err)
	}

	if _, err := fan.Switch(speed); err != nil {
		return fmt.Errorf("failed to switch %v: %w", fan, err)
	}

	after, err := fan.IsSwitchedOn()
	if err != nil {
		return fmt.Errorf("failed to query %v: %w", fan, err)
	}

	log.Info().
		Stringer("Device", fan).
		Bool("WasSwitchedOn", before).
		Bool("SwitchedOn", after).
		Msg("Fan switched")

	return nil
}
