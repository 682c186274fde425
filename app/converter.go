package app

import (
	"context"
	"fmt"
	"io"

	"districtmap/domain/district"
	"districtmap/internal/errors"
	"districtmap/internal/logging"
	"districtmap/ports"
)

var logger = logging.New("Converter")

// ConvertRequest names the table to read and where the document goes
type ConvertRequest struct {
	Source     ports.RowSource
	SourceName string
	OutputPath string
}

// Converter turns a district table into the static site lookup document
type Converter struct {
	sink     ports.DocumentSink
	progress io.Writer
}

// NewConverter creates a converter writing documents to sink and progress lines to progress
func NewConverter(sink ports.DocumentSink, progress io.Writer) *Converter {
	if progress == nil {
		progress = io.Discard
	}
	return &Converter{sink: sink, progress: progress}
}

// Convert reads, aggregates and writes in a single pass. Nothing is written
// unless every earlier step succeeded.
func (c *Converter) Convert(ctx context.Context, req ConvertRequest) (*Summary, error) {
	c.printf("Reading %s...\n", req.SourceName)
	rows, err := req.Source.ReadRows(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Read %d rows from %s", len(rows), req.SourceName)

	c.printf("Processing districts...\n")
	agg := district.Aggregate(rows)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "conversion cancelled")
	}

	c.printf("Building reverse mappings...\n")
	ds, err := district.Build(agg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build lookup maps")
	}

	c.printf("Writing to %s...\n", req.OutputPath)
	if err := c.sink.Write(ctx, req.OutputPath, ds); err != nil {
		return nil, err
	}

	summary := Summarize(ds, req.OutputPath)
	summary.Print(c.progress)
	return summary, nil
}

func (c *Converter) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.progress, format, args...)
}
