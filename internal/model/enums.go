package model

import "strings"

// Size is a garment size label covering letter, numeric, and shoe sizes.
type Size string

// Size constants.
const (
	SizeXXS     Size = "XXS"
	SizeXS      Size = "XS"
	SizeS       Size = "S"
	SizeM       Size = "M"
	SizeL       Size = "L"
	SizeXL      Size = "XL"
	SizeXXL     Size = "XXL"
	SizeNumeric Size = "numeric" // catch-all for waist/EU sizes stored in Notes
	SizeShoe    Size = "shoe"
	SizeUnknown Size = ""
)

// Season marks when a garment is worn.
type Season string

// Season constants.
const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all-season"
	SeasonUnknown   Season = ""
)

// ParseSeason maps free text to a season, falling back to unknown.
func ParseSeason(s string) Season {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spring":
		return SeasonSpring
	case "summer":
		return SeasonSummer
	case "fall", "autumn":
		return SeasonFall
	case "winter":
		return SeasonWinter
	case "all", "all-season", "allseason":
		return SeasonAllSeason
	default:
		return SeasonUnknown
	}
}

// Occasion marks what a garment is worn for.
type Occasion string

// Occasion constants.
const (
	OccasionCasual  Occasion = "casual"
	OccasionWork    Occasion = "work"
	OccasionFormal  Occasion = "formal"
	OccasionSport   Occasion = "sport"
	OccasionParty   Occasion = "party"
	OccasionLounge  Occasion = "lounge"
	OccasionUnknown Occasion = ""
)

// Condition grades garment wear.
type Condition string

// Condition constants. ConditionGood is the default for new records.
const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionWorn    Condition = "worn"
	ConditionDamaged Condition = "damaged"
)

// ParseCondition maps free text to a condition, defaulting to good.
func ParseCondition(s string) Condition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new":
		return ConditionNew
	case "like-new", "likenew", "like new":
		return ConditionLikeNew
	case "worn":
		return ConditionWorn
	case "damaged":
		return ConditionDamaged
	default:
		return ConditionGood
	}
}
