package main

import (
	"context"
	"fmt"

	"github.com/robertof/go-factory-demos/document"
	"github.com/rs/zerolog/log"
)

// runDocumentDemo reads every source and logs its record. The first source that could
// not be read aborts the demo.
func runDocumentDemo(ctx context.Context, sources []document.Source, parallelism int) (
	[]document.Record,
	error,
) {
	results, err := document.ReadAll(ctx, sources, parallelism)
	if err != nil {
		return nil, err
	}

	records := make([]document.Record, 0, len(results))

	for _, res := range results {
		if res.Error != nil {
			return records, fmt.Errorf("error reading data from doc %v: %w", res.Source, res.Error)
		}

		log.Info().
			Str("File", res.Path).
			Stringer("DocData", res.Record).
			Msg("Read document")

		records = append(records, res.Record)
	}

	return records, nil
}
