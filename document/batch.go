package document

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Source is a document to read along with its type.
type Source struct {
	Path string
	Type Type
}

func (s Source) String() string {
	return fmt.Sprintf("%s(%s)", s.Type, s.Path)
}

type Result struct {
	Source
	Record Record
	Error  error
}

func (r Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("result:error(%v)", r.Error)
	} else {
		return fmt.Sprintf("result:success(%v)", r.Record)
	}
}

// ReadAll reads every source and returns one result per source, in the same order.
// Failures to read a single source are reported in its Result; the returned error is
// only set when ctx is done before all sources could be read.
//
// At most parallelism sources are read at the same time. Values below 1 read sources
// one after the other.
func ReadAll(ctx context.Context, sources []Source, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	log.Debug().
		Int("Sources", len(sources)).
		Int("Parallelism", parallelism).
		Msg("Reading documents")

	out := make([]Result, len(sources))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)

	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out[i] = read(src)

			log.Trace().
				Stringer("Source", src).
				Stringer("Result", out[i]).
				Msg("Received result for document")

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return out, err
	}

	return out, nil
}

func read(src Source) Result {
	res := Result{Source: src}

	editor, err := NewEditor(src.Path, src.Type)
	if err != nil {
		res.Error = err
		return res
	}

	res.Record, res.Error = editor.Read()

	return res
}
