// Package export renders the catalog to portable CSV and JSON documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/b1443/ClosetManager/internal/model"
)

// csvHeader is the fixed column order of a catalog CSV export.
var csvHeader = []string{
	"Name", "Type", "Material", "Color", "Brand", "Size", "Price",
	"Store", "Season", "Occasion", "Condition", "Tags", "Date Added",
}

// WriteCSV writes the records as CSV, header row first. Tags are joined
// with ';' so they survive the comma-separated container.
func WriteCSV(w io.Writer, records []model.ClothingRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range records {
		if err := cw.Write(csvRow(&records[i])); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", records[i].ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func csvRow(rec *model.ClothingRecord) []string {
	price := ""
	if rec.Price != 0 {
		price = strconv.FormatFloat(rec.Price, 'f', 2, 64)
	}
	return []string{
		rec.Name,
		rec.Type.String(),
		rec.Material.String(),
		rec.Color,
		rec.Brand,
		string(rec.Size),
		price,
		rec.Store,
		string(rec.Season),
		string(rec.Occasion),
		string(rec.Condition),
		strings.Join(rec.Tags, ";"),
		rec.DateAdded.Format(time.RFC3339),
	}
}
