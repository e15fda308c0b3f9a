package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robertof/go-factory-demos/device"
	"github.com/rs/zerolog/log"
)

var (
	descSwitchedOn = prometheus.NewDesc(
		"device_switched_on",
		"Whether the device is switched on (1) or off (0).",
		[]string{"brand", "kind", "id"},
		nil,
	)

	descFanSpeed = prometheus.NewDesc(
		"device_fan_speed",
		"Speed level of the fan, between 0 and 5.",
		[]string{"brand", "id"},
		nil,
	)
)

type CollectFunc func() []device.Device

type collector struct {
	CollectFunc
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, dev := range c.CollectFunc() {
		brand, id := dev.Config().Brand, dev.ID().String()

		on, err := dev.IsSwitchedOn()
		if err != nil {
			log.Error().Stringer("Device", dev).Err(err).Msg("Failed to query device state")
			ch <- prometheus.NewInvalidMetric(descSwitchedOn, err)
			continue
		}

		ch <- prometheus.MustNewConstMetric(
			descSwitchedOn,
			prometheus.GaugeValue,
			boolToFloat(on),
			brand,
			string(dev.Kind()),
			id,
		)

		if fan, ok := dev.(device.Fan); ok {
			ch <- prometheus.MustNewConstMetric(
				descFanSpeed,
				prometheus.GaugeValue,
				float64(fan.Speed()),
				brand,
				id,
			)
		}
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func RegisterCollector(f CollectFunc, reg prometheus.Registerer) {
	c := &collector{f}

	reg.MustRegister(c)
}
