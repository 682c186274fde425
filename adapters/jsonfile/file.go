package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"districtmap/internal/errors"
	"districtmap/internal/logging"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var logger = logging.New("JSONFile")

// Writer renders values as indented JSON and replaces the target file atomically
type Writer struct {
	indent string
}

// NewWriter creates a writer using indent for each nesting level
func NewWriter(indent string) *Writer {
	return &Writer{indent: indent}
}

// Encode renders v without HTML escaping so county names stay readable
func (w *Writer) Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write encodes v and moves it over path. The previous file is untouched
// unless the whole document was written.
func (w *Writer) Write(ctx context.Context, path string, v interface{}) error {
	data, err := w.Encode(v)
	if err != nil {
		return errors.WriteFailed("failed to encode JSON", err)
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "write of %s cancelled", path)
	}

	dir := filepath.Dir(path)
	tmpName := fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()[:8])
	tmpPath := filepath.Join(dir, tmpName)

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return errors.WriteFailed(fmt.Sprintf("failed to write %s", path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up on failure
		return errors.WriteFailed(fmt.Sprintf("failed to replace %s", path), err)
	}

	logger.Info("Wrote %d bytes to %s", len(data), path)
	return nil
}

// Read loads a JSON document and checks that it parses
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.InputNotFound(path)
		}
		return nil, errors.ReadFailed(fmt.Sprintf("failed to read %s", path), err)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidInput(fmt.Sprintf("%s is not valid JSON", path))
	}
	return data, nil
}
