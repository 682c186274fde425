package ports

import (
	"context"

	"districtmap/domain/district"
)

// RowSource yields the positional rows of a district table
type RowSource interface {
	ReadRows(ctx context.Context) ([]district.Row, error)
}

// DocumentSink persists a rendered document at path, replacing any previous one
type DocumentSink interface {
	Write(ctx context.Context, path string, v interface{}) error
}
