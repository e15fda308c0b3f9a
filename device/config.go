package device

import (
	"net/netip"

	"github.com/pkg/errors"
)

// Config is the vendor configuration shared by every device a Factory creates.
// Devices keep their own copy.
type Config struct {
	Brand string
	Addr  netip.Addr
	Port  uint16
}

func (c Config) Validate() error {
	if c.Brand == "" {
		return errors.Wrap(ErrInvalidConfig, "brand is required")
	}

	if !c.Addr.IsValid() {
		return errors.Wrap(ErrInvalidConfig, "addr is required")
	}

	if c.Port == 0 {
		return errors.Wrapf(ErrInvalidConfig, "port is required for %s", c.Brand)
	}

	return nil
}

func (c Config) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(c.Addr, c.Port)
}

func (c Config) String() string {
	return c.Brand + "@" + c.AddrPort().String()
}
