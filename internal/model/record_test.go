package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b1443/ClosetManager/pkg/classify"
	"github.com/b1443/ClosetManager/pkg/garment"
)

func TestNewRecordDefaults(t *testing.T) {
	rec := NewRecord("")

	require.NotEmpty(t, rec.ID)
	assert.Equal(t, DefaultName, rec.Name)
	assert.Equal(t, garment.TypeUnknown, rec.Type)
	assert.Equal(t, garment.MaterialUnknown, rec.Material)
	assert.Equal(t, ConditionGood, rec.Condition)
	assert.False(t, rec.DateAdded.IsZero())

	other := NewRecord("Oxford")
	assert.Equal(t, "Oxford", other.Name)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestNewRecordFromClassification(t *testing.T) {
	rec := NewRecordFromClassification("  ", classify.Result{
		Type:       garment.TypeJeans,
		Material:   garment.MaterialDenim,
		Color:      "Dark Blue",
		Confidence: 0.8,
	})

	assert.Equal(t, DefaultName, rec.Name)
	assert.Equal(t, garment.TypeJeans, rec.Type)
	assert.Equal(t, garment.MaterialDenim, rec.Material)
	assert.Equal(t, "Dark Blue", rec.Color)
}

func TestNormalize(t *testing.T) {
	rec := ClothingRecord{
		Name:     "  Favorite Tee  ",
		Type:     garment.Type("hat"),
		Material: garment.Material("unobtainium"),
	}
	rec.Normalize()

	assert.Equal(t, "Favorite Tee", rec.Name)
	assert.Equal(t, garment.TypeUnknown, rec.Type)
	assert.Equal(t, garment.MaterialUnknown, rec.Material)
	assert.Equal(t, ConditionGood, rec.Condition)
}

func TestMatchesQuery(t *testing.T) {
	rec := ClothingRecord{
		Name:     "Navy Blazer",
		Type:     garment.TypeBlazer,
		Material: garment.MaterialWool,
		Color:    "Dark Blue",
	}

	assert.True(t, rec.MatchesQuery("navy"))
	assert.True(t, rec.MatchesQuery("BLAZER"))
	assert.True(t, rec.MatchesQuery("wool"))
	assert.True(t, rec.MatchesQuery("dark blue"))
	assert.True(t, rec.MatchesQuery("  "))
	assert.False(t, rec.MatchesQuery("silk"))
}

func TestParseSeason(t *testing.T) {
	assert.Equal(t, SeasonFall, ParseSeason("Autumn"))
	assert.Equal(t, SeasonAllSeason, ParseSeason("all"))
	assert.Equal(t, SeasonUnknown, ParseSeason("monsoon"))
}

func TestParseCondition(t *testing.T) {
	assert.Equal(t, ConditionLikeNew, ParseCondition("like new"))
	assert.Equal(t, ConditionGood, ParseCondition(""))
	assert.Equal(t, ConditionGood, ParseCondition("pristine"))
}
