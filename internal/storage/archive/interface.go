package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Storage defines the interface for report archive backends
type Storage interface {
	// Write stores data at the given path
	Write(ctx context.Context, path string, data []byte) error

	// Read retrieves data from the given path
	Read(ctx context.Context, path string) ([]byte, error)

	// List returns all paths matching the prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the data at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if data exists at the given path
	Exists(ctx context.Context, path string) (bool, error)
}

// ReportPath builds the archive location for one scan run:
// scans/<yyyy>/<mm>/<dd>/<runID>.json
func ReportPath(date time.Time, runID string) string {
	return fmt.Sprintf("scans/%s/%s.json", date.Format("2006/01/02"), runID)
}

// WriteJSON marshals v and stores it at path.
func WriteJSON(ctx context.Context, s Storage, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return s.Write(ctx, path, data)
}

// ReadJSON retrieves path and unmarshals it into v.
func ReadJSON(ctx context.Context, s Storage, path string, v any) error {
	data, err := s.Read(ctx, path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
