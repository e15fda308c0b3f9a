package philips

import (
	"fmt"

	"github.com/robertof/go-factory-demos/device"
	"github.com/rs/zerolog/log"
)

const FamilyName = "Philips"

type Family struct{}

func (f *Family) Name() string {
	return FamilyName
}

func (f *Family) NewFactory(cfg device.Config) (device.Factory, error) {
	if cfg.Brand == "" {
		cfg.Brand = FamilyName
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("philips: %w", err)
	}

	log.Debug().Stringer("Config", cfg).Msg("philips: created device factory")

	return &Factory{bridge: cfg}, nil
}

func (f *Family) Help() string {
	return `Supported parameters:
addr (string, required): IP address of the Philips bridge
port (int, required): Port of the Philips bridge
brand (string): Brand reported by the devices. Defaults to "Philips".`
}

// Factory creates Philips devices attached to the same bridge.
type Factory struct {
	bridge device.Config
}

func (f *Factory) Config() device.Config {
	return f.bridge
}

func (f *Factory) CreateLightBulb() (device.LightBulb, error) {
	return newLightBulb(f.bridge), nil
}

func (f *Factory) CreateFan() (device.Fan, error) {
	return newFan(f.bridge), nil
}
