package dnd5e

// Skill is one of the eighteen skills and its governing ability
type Skill struct {
	Key     string   `json:"key" yaml:"key"`
	Name    string   `json:"name" yaml:"name"`
	Ability Ability  `json:"ability" yaml:"ability"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Skills is the skill table in sheet order. Aliases carry the French names
// used by the reference tables.
var Skills = []Skill{
	{Key: "acrobatics", Name: "Acrobatics", Ability: AbilityDexterity, Aliases: []string{"Acrobaties"}},
	{Key: "animal-handling", Name: "Animal Handling", Ability: AbilityWisdom, Aliases: []string{"Dressage"}},
	{Key: "arcana", Name: "Arcana", Ability: AbilityIntelligence, Aliases: []string{"Arcanes"}},
	{Key: "athletics", Name: "Athletics", Ability: AbilityStrength, Aliases: []string{"Athlétisme"}},
	{Key: "deception", Name: "Deception", Ability: AbilityCharisma, Aliases: []string{"Tromperie"}},
	{Key: "history", Name: "History", Ability: AbilityIntelligence, Aliases: []string{"Histoire"}},
	{Key: "insight", Name: "Insight", Ability: AbilityWisdom, Aliases: []string{"Intuition", "Perspicacité"}},
	{Key: "intimidation", Name: "Intimidation", Ability: AbilityCharisma},
	{Key: "investigation", Name: "Investigation", Ability: AbilityIntelligence},
	{Key: "medicine", Name: "Medicine", Ability: AbilityWisdom, Aliases: []string{"Médecine"}},
	{Key: "nature", Name: "Nature", Ability: AbilityIntelligence},
	{Key: "perception", Name: "Perception", Ability: AbilityWisdom},
	{Key: "performance", Name: "Performance", Ability: AbilityCharisma, Aliases: []string{"Représentation"}},
	{Key: "persuasion", Name: "Persuasion", Ability: AbilityCharisma},
	{Key: "religion", Name: "Religion", Ability: AbilityIntelligence},
	{Key: "sleight-of-hand", Name: "Sleight of Hand", Ability: AbilityDexterity, Aliases: []string{"Escamotage"}},
	{Key: "stealth", Name: "Stealth", Ability: AbilityDexterity, Aliases: []string{"Furtivité", "Discrétion"}},
	{Key: "survival", Name: "Survival", Ability: AbilityWisdom, Aliases: []string{"Survie"}},
}

var skillIndex = buildSkillIndex()

func buildSkillIndex() map[string]*Skill {
	index := make(map[string]*Skill)
	for i := range Skills {
		s := &Skills[i]
		index[NormalizeName(s.Key)] = s
		index[NormalizeName(s.Name)] = s
		for _, alias := range s.Aliases {
			index[NormalizeName(alias)] = s
		}
	}
	return index
}

// LookupSkill resolves a key, English name or alias to its skill
func LookupSkill(name string) (*Skill, bool) {
	s, ok := skillIndex[NormalizeName(name)]
	return s, ok
}

// CanonicalSkill returns the canonical identifier for a skill name. Known
// skills map to their key; anything else maps to its normalized spelling.
func CanonicalSkill(name string) string {
	if s, ok := LookupSkill(name); ok {
		return s.Key
	}
	return NormalizeName(name)
}
