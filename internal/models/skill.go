package models

import "strings"

// SkillLevel is the user-declared sailing proficiency.
type SkillLevel int

const (
	SkillUnknown SkillLevel = iota
	SkillBeginner
	SkillIntermediate
	SkillAdvanced
)

var skillTags = map[SkillLevel]string{
	SkillBeginner:     "principiante",
	SkillIntermediate: "intermedio",
	SkillAdvanced:     "avanzado",
}

var skillAliases = map[string]SkillLevel{
	"beginner":     SkillBeginner,
	"intermediate": SkillIntermediate,
	"advanced":     SkillAdvanced,
}

// ParseSkillLevel normalizes a wire tag. Unrecognised tags become SkillUnknown.
func ParseSkillLevel(tag string) SkillLevel {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for s, t := range skillTags {
		if t == tag {
			return s
		}
	}
	if s, ok := skillAliases[tag]; ok {
		return s
	}
	return SkillUnknown
}

// AllSkillLevels returns the known levels from least to most experienced.
func AllSkillLevels() []SkillLevel {
	return []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced}
}

func (s SkillLevel) Known() bool {
	_, ok := skillTags[s]
	return ok
}

// String returns the canonical wire tag.
func (s SkillLevel) String() string {
	if t, ok := skillTags[s]; ok {
		return t
	}
	return "unknown"
}

// DisplayName is the noun used inside narrative sentences.
func (s SkillLevel) DisplayName() string {
	if t, ok := skillTags[s]; ok {
		return t
	}
	return "navegante"
}

// Label is the menu label.
func (s SkillLevel) Label() string {
	switch s {
	case SkillBeginner:
		return "Principiante"
	case SkillIntermediate:
		return "Intermedio"
	case SkillAdvanced:
		return "Avanzado"
	}
	return "Navegante"
}

// Next cycles through AllSkillLevels.
func (s SkillLevel) Next() SkillLevel {
	all := AllSkillLevels()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (s SkillLevel) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SkillLevel) UnmarshalText(text []byte) error {
	*s = ParseSkillLevel(string(text))
	return nil
}

// SafetyLimits are the default personal limits shown for a skill level.
type SafetyLimits struct {
	MinWindKn float64
	MaxWindKn float64
	MaxGustKn float64
	MaxWaveM  float64
}

// SafetyLimitsFor returns the default limits for s. Unknown levels get the
// intermediate limits.
func SafetyLimitsFor(s SkillLevel) SafetyLimits {
	switch s {
	case SkillBeginner:
		return SafetyLimits{MinWindKn: 8, MaxWindKn: 20, MaxGustKn: 28, MaxWaveM: 1.5}
	case SkillAdvanced:
		return SafetyLimits{MinWindKn: 12, MaxWindKn: 32, MaxGustKn: 40, MaxWaveM: 3.0}
	default:
		return SafetyLimits{MinWindKn: 10, MaxWindKn: 25, MaxGustKn: 35, MaxWaveM: 2.5}
	}
}
