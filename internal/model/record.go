// Package model defines the catalog domain records.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/b1443/ClosetManager/pkg/classify"
	"github.com/b1443/ClosetManager/pkg/garment"
)

// DefaultName is used when a record is saved with a blank name.
const DefaultName = "Unnamed Item"

// ClothingRecord is one cataloged garment. Identity and DateAdded are fixed
// at creation; every other field is user-editable.
type ClothingRecord struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      garment.Type     `json:"type"`
	Material  garment.Material `json:"material"`
	Color     string           `json:"color"`
	DateAdded time.Time        `json:"date_added"`

	// Compressed image attachments, optional.
	FrontImage []byte `json:"-"`
	BackImage  []byte `json:"-"`

	// Optional metadata.
	Brand        string     `json:"brand,omitempty"`
	Size         Size       `json:"size,omitempty"`
	Price        float64    `json:"price,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Store        string     `json:"store,omitempty"`
	Season       Season     `json:"season,omitempty"`
	Occasion     Occasion   `json:"occasion,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Condition    Condition  `json:"condition"`
	Tags         []string   `json:"tags,omitempty"`
}

// NewRecord creates a record with a fresh identity, a normalized name, and
// the condition default.
func NewRecord(name string) ClothingRecord {
	return ClothingRecord{
		ID:        uuid.NewString(),
		Name:      NormalizeName(name),
		Type:      garment.TypeUnknown,
		Material:  garment.MaterialUnknown,
		DateAdded: time.Now().UTC(),
		Condition: ConditionGood,
	}
}

// NewRecordFromClassification seeds a record from a classification result.
func NewRecordFromClassification(name string, result classify.Result) ClothingRecord {
	rec := NewRecord(name)
	rec.Type = result.Type
	rec.Material = result.Material
	rec.Color = result.Color
	return rec
}

// NormalizeName trims the name and substitutes the placeholder when blank,
// so no record persists with an empty name.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// Normalize enforces the persistence invariants in place.
func (r *ClothingRecord) Normalize() {
	r.Name = NormalizeName(r.Name)
	if !r.Type.Valid() {
		r.Type = garment.TypeUnknown
	}
	if !r.Material.Valid() {
		r.Material = garment.MaterialUnknown
	}
	if r.Condition == "" {
		r.Condition = ConditionGood
	}
}

// MatchesQuery reports whether the record matches a case-insensitive
// substring query over name, type, material, and color.
func (r *ClothingRecord) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Type.String()), q) ||
		strings.Contains(strings.ToLower(r.Material.String()), q) ||
		strings.Contains(strings.ToLower(r.Color), q)
}
