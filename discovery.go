package main

import (
	"github.com/robertof/go-factory-demos/device"
	"github.com/robertof/go-factory-demos/document"
	"github.com/robertof/go-factory-demos/utils"
	"github.com/rs/zerolog/log"
)

func doFamilyDiscovery(registry *device.Registry) {
	families := registry.Families()

	log.Info().Int("Found", len(families)).Msg("Listing registered device families")

	for _, family := range families {
		ev := log.Info().Str("Name", family.Name())

		if docs, ok := family.(device.FamilyDocs); ok {
			ev = ev.Str("Help", docs.Help())
		}

		ev.Msg("Found device family")
	}

	log.Info().
		Array("Types", utils.ToZeroLogArray(document.Types)).
		Msg("Supported document types")
}
