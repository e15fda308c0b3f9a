package device

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DeviceSpec is a device family configuration in the form of `key=value,key=value`.
type DeviceSpec map[string]string

const (
	DeviceSpecFieldBrand   = "brand"
	DeviceSpecFieldAddress = "addr"
	DeviceSpecFieldPort    = "port"
)

func NewDeviceSpec(s string) DeviceSpec {
	spec := DeviceSpec{}
	entries := strings.Split(s, ",")

	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)

		if len(parts) != 2 {
			log.Warn().Str("Entry", entry).Msg("Skipping invalid device spec entry")
			continue
		}

		spec[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	return spec
}

func (ds DeviceSpec) Brand() string {
	return ds[DeviceSpecFieldBrand]
}

func (ds DeviceSpec) Addr() string {
	return ds[DeviceSpecFieldAddress]
}

func (ds DeviceSpec) Port() string {
	return ds[DeviceSpecFieldPort]
}

// Config converts the spec into a Config. The brand falls back to defaultBrand when
// the spec doesn't carry one. The result is not validated.
func (ds DeviceSpec) Config(defaultBrand string) (cfg Config, err error) {
	cfg.Brand = defaultBrand

	if brand := ds.Brand(); brand != "" {
		cfg.Brand = brand
	}

	if addr := ds.Addr(); addr != "" {
		if cfg.Addr, err = netip.ParseAddr(addr); err != nil {
			return cfg, fmt.Errorf("%w: invalid addr: %w", ErrInvalidConfig, err)
		}
	}

	if port := ds.Port(); port != "" {
		p, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return cfg, fmt.Errorf("%w: invalid port %q", ErrInvalidConfig, port)
		}

		cfg.Port = uint16(p)
	}

	return cfg, nil
}
