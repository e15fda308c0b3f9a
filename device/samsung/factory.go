package samsung

import (
	"fmt"

	"github.com/robertof/go-factory-demos/device"
	"github.com/rs/zerolog/log"
)

const FamilyName = "Samsung"

type Family struct{}

func (f *Family) Name() string {
	return FamilyName
}

func (f *Family) NewFactory(cfg device.Config) (device.Factory, error) {
	if cfg.Brand == "" {
		cfg.Brand = FamilyName
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("samsung: %w", err)
	}

	log.Debug().Stringer("Config", cfg).Msg("samsung: created device factory")

	return &Factory{cfg: cfg}, nil
}

func (f *Family) Help() string {
	return `Supported parameters:
addr (string, required): IP address of the Samsung hub
port (int, required): Port of the Samsung hub
brand (string): Brand reported by the devices. Defaults to "Samsung".`
}

// Factory creates Samsung devices sharing a single hub configuration.
type Factory struct {
	cfg device.Config
}

func (f *Factory) Config() device.Config {
	return f.cfg
}

func (f *Factory) CreateLightBulb() (device.LightBulb, error) {
	return newLightBulb(f.cfg), nil
}

func (f *Factory) CreateFan() (device.Fan, error) {
	return newFan(f.cfg), nil
}
