package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/b1443/ClosetManager/internal/model"
)

// FormatVersion identifies the JSON export envelope layout.
const FormatVersion = "1.0"

// Document is the JSON export envelope.
type Document struct {
	Version    string                 `json:"version"`
	ExportDate time.Time              `json:"exportDate"`
	ItemCount  int                    `json:"itemCount"`
	Items      []model.ClothingRecord `json:"items"`
}

// WriteJSON writes the records as an indented JSON document. Image blobs are
// not serialized.
func WriteJSON(w io.Writer, records []model.ClothingRecord) error {
	doc := Document{
		Version:    FormatVersion,
		ExportDate: time.Now().UTC(),
		ItemCount:  len(records),
		Items:      records,
	}
	if doc.Items == nil {
		doc.Items = []model.ClothingRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}
