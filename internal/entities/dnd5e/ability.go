// Package dnd5e holds the character-creation domain types: abilities, the
// score generation methods, reference records, drafts and finished characters.
package dnd5e

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ability is the canonical key of one of the six ability scores
type Ability string

// Ability keys
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

var abilityAliases = map[string]Ability{
	"str":          AbilityStrength,
	"strength":     AbilityStrength,
	"force":        AbilityStrength,
	"dex":          AbilityDexterity,
	"dexterity":    AbilityDexterity,
	"dexterite":    AbilityDexterity,
	"con":          AbilityConstitution,
	"constitution": AbilityConstitution,
	"int":          AbilityIntelligence,
	"intelligence": AbilityIntelligence,
	"wis":          AbilityWisdom,
	"wisdom":       AbilityWisdom,
	"sagesse":      AbilityWisdom,
	"cha":          AbilityCharisma,
	"charisma":     AbilityCharisma,
	"charisme":     AbilityCharisma,
}

// String returns the display name of the ability
func (a Ability) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return string(a)
}

// Valid reports whether a is one of the six canonical keys
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// ParseAbility resolves a canonical key, an English or French name or a
// three letter abbreviation to an Ability.
func ParseAbility(s string) (Ability, bool) {
	a, ok := abilityAliases[NormalizeName(s)]
	return a, ok
}

// AbilityScores maps abilities to integer scores
type AbilityScores map[Ability]int

// NewAbilityScores returns a complete score set with every ability at value
func NewAbilityScores(value int) AbilityScores {
	scores := make(AbilityScores, len(Abilities))
	for _, a := range Abilities {
		scores[a] = value
	}
	return scores
}

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	if s == nil {
		return nil
	}
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Complete reports whether all six abilities carry a score
func (s AbilityScores) Complete() bool {
	for _, a := range Abilities {
		if _, ok := s[a]; !ok {
			return false
		}
	}
	return true
}

// Add returns s with every entry of bonus added. Abilities absent from
// bonus are unchanged.
func (s AbilityScores) Add(bonus map[Ability]int) AbilityScores {
	out := s.Clone()
	if out == nil {
		out = make(AbilityScores)
	}
	for a, b := range bonus {
		out[a] += b
	}
	return out
}

// NormalizeName folds case, strips diacritics and collapses whitespace so that
// names from independently authored tables compare equal.
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.ReplaceAll(stripped, "’", "'")
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}
