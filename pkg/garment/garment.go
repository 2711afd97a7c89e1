// Package garment defines the closed garment category and fabric vocabularies
// shared by the analyzers and the catalog.
package garment

import "strings"

// Type is a closed garment category.
type Type string

// Garment categories.
const (
	TypeShirt    Type = "shirt"
	TypePants    Type = "pants"
	TypeJacket   Type = "jacket"
	TypeDress    Type = "dress"
	TypeSkirt    Type = "skirt"
	TypeShorts   Type = "shorts"
	TypeSweater  Type = "sweater"
	TypeHoodie   Type = "hoodie"
	TypeJeans    Type = "jeans"
	TypeBlazer   Type = "blazer"
	TypeTShirt   Type = "t-shirt"
	TypeBlouse   Type = "blouse"
	TypeCoat     Type = "coat"
	TypeVest     Type = "vest"
	TypeCardigan Type = "cardigan"
	TypeUnknown  Type = "unknown"
)

// Types lists every garment category, unknown last.
func Types() []Type {
	return []Type{
		TypeShirt, TypePants, TypeJacket, TypeDress, TypeSkirt, TypeShorts,
		TypeSweater, TypeHoodie, TypeJeans, TypeBlazer, TypeTShirt,
		TypeBlouse, TypeCoat, TypeVest, TypeCardigan, TypeUnknown,
	}
}

// String returns the lowercase category name.
func (t Type) String() string {
	return string(t)
}

// Valid reports whether t is one of the known categories.
func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType maps free text to a garment category, falling back to unknown.
func ParseType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "tshirt" || t == "tee" {
		t = TypeTShirt
	}
	if t.Valid() {
		return t
	}
	return TypeUnknown
}

// Material is a closed fabric category.
type Material string

// Fabric categories.
const (
	MaterialCotton    Material = "cotton"
	MaterialPolyester Material = "polyester"
	MaterialWool      Material = "wool"
	MaterialSilk      Material = "silk"
	MaterialLinen     Material = "linen"
	MaterialDenim     Material = "denim"
	MaterialLeather   Material = "leather"
	MaterialCashmere  Material = "cashmere"
	MaterialRayon     Material = "rayon"
	MaterialNylon     Material = "nylon"
	MaterialSpandex   Material = "spandex"
	MaterialAcrylic   Material = "acrylic"
	MaterialVelvet    Material = "velvet"
	MaterialCorduroy  Material = "corduroy"
	MaterialFlannel   Material = "flannel"
	MaterialJersey    Material = "jersey"
	MaterialUnknown   Material = "unknown"
)

// Materials lists every fabric category, unknown last.
func Materials() []Material {
	return []Material{
		MaterialCotton, MaterialPolyester, MaterialWool, MaterialSilk,
		MaterialLinen, MaterialDenim, MaterialLeather, MaterialCashmere,
		MaterialRayon, MaterialNylon, MaterialSpandex, MaterialAcrylic,
		MaterialVelvet, MaterialCorduroy, MaterialFlannel, MaterialJersey,
		MaterialUnknown,
	}
}

// String returns the lowercase fabric name.
func (m Material) String() string {
	return string(m)
}

// Valid reports whether m is one of the known fabrics.
func (m Material) Valid() bool {
	for _, known := range Materials() {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMaterial maps free text to a fabric category, falling back to unknown.
func ParseMaterial(s string) Material {
	m := Material(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m
	}
	return MaterialUnknown
}
