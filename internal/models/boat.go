package models

import "strings"

// BoatType is the user-declared vessel category. It only affects narrative
// wording on the client; the scoring service uses it for its own matrices.
type BoatType int

const (
	BoatUnknown BoatType = iota
	BoatVelaLigera
	BoatCruiser35
	BoatCruiser3545
	BoatCatamaran
	BoatDinghy
	BoatWindsurf
)

var boatTags = map[BoatType]string{
	BoatVelaLigera:  "vela_ligera",
	BoatCruiser35:   "cruiser_35",
	BoatCruiser3545: "cruiser_35_45",
	BoatCatamaran:   "catamaran",
	BoatDinghy:      "dinghy",
	BoatWindsurf:    "windsurf",
}

var boatNames = map[BoatType]string{
	BoatVelaLigera:  "vela ligera",
	BoatCruiser35:   "crucero menor de 35 pies",
	BoatCruiser3545: "crucero de 35-45 pies",
	BoatCatamaran:   "catamarán",
	BoatDinghy:      "dinghy",
	BoatWindsurf:    "windsurf/wingfoil",
}

var boatLabels = map[BoatType]string{
	BoatVelaLigera:  "Vela ligera",
	BoatCruiser35:   "Crucero <35'",
	BoatCruiser3545: "Crucero 35'-45'",
	BoatCatamaran:   "Catamarán",
	BoatDinghy:      "Dinghy",
	BoatWindsurf:    "Windsurf/Wingfoil",
}

// legacyBoatTags maps the older velero_* vocabulary onto the canonical tags.
var legacyBoatTags = map[string]BoatType{
	"velero_pequeno": BoatCruiser35,
	"velero_pequeño": BoatCruiser35,
	"velero_medio":   BoatCruiser3545,
	"velero_grande":  BoatCruiser3545,
	"ligera":         BoatVelaLigera,
	"wingfoil":       BoatWindsurf,
}

// ParseBoatType normalizes a wire tag. Legacy tags map to their canonical
// equivalent and anything unrecognised becomes BoatUnknown.
func ParseBoatType(tag string) BoatType {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for b, t := range boatTags {
		if t == tag {
			return b
		}
	}
	if b, ok := legacyBoatTags[tag]; ok {
		return b
	}
	return BoatUnknown
}

// AllBoatTypes returns the known boat types in menu order.
func AllBoatTypes() []BoatType {
	return []BoatType{BoatVelaLigera, BoatCruiser35, BoatCruiser3545, BoatCatamaran, BoatDinghy, BoatWindsurf}
}

// Known reports whether b is one of the canonical boat types.
func (b BoatType) Known() bool {
	_, ok := boatTags[b]
	return ok
}

// String returns the canonical wire tag.
func (b BoatType) String() string {
	if t, ok := boatTags[b]; ok {
		return t
	}
	return "unknown"
}

// DisplayName is the lower-case noun used inside narrative sentences.
func (b BoatType) DisplayName() string {
	if n, ok := boatNames[b]; ok {
		return n
	}
	return "embarcación"
}

// Label is the menu label.
func (b BoatType) Label() string {
	if l, ok := boatLabels[b]; ok {
		return l
	}
	return "Embarcación"
}

// Next cycles through AllBoatTypes. Unknown values restart at the first entry.
func (b BoatType) Next() BoatType {
	all := AllBoatTypes()
	for i, v := range all {
		if v == b {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (b BoatType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BoatType) UnmarshalText(text []byte) error {
	*b = ParseBoatType(string(text))
	return nil
}
