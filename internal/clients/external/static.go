package external

import (
	"context"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	internalDnd5e "github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

type raceFile struct {
	Races []*internalDnd5e.Race `yaml:"races"`
}

type classFile struct {
	Classes []*internalDnd5e.Class `yaml:"classes"`
}

type backgroundFile struct {
	Backgrounds []*internalDnd5e.Background `yaml:"backgrounds"`
}

type subclassFile struct {
	Subclasses []*internalDnd5e.Subclass `yaml:"subclasses"`
}

// catalog is an in-memory, read-only set of reference tables. Lookups accept
// an ID or a display name.
type catalog struct {
	races       []*internalDnd5e.Race
	classes     []*internalDnd5e.Class
	backgrounds []*internalDnd5e.Background
	subclasses  []*internalDnd5e.Subclass

	raceIndex       map[string]*internalDnd5e.Race
	classIndex      map[string]*internalDnd5e.Class
	backgroundIndex map[string]*internalDnd5e.Background
}

// NewStatic creates a client over the embedded reference tables.
func NewStatic() (Client, error) {
	return loadCatalog()
}

func loadCatalog() (*catalog, error) {
	var (
		races       raceFile
		classes     classFile
		backgrounds backgroundFile
		subclasses  subclassFile
	)

	files := []struct {
		name   string
		target any
	}{
		{"data/races.yaml", &races},
		{"data/classes.yaml", &classes},
		{"data/backgrounds.yaml", &backgrounds},
		{"data/subclasses.yaml", &subclasses},
	}
	for _, f := range files {
		raw, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", f.name)
		}
		if err := yaml.Unmarshal(raw, f.target); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", f.name)
		}
	}

	return newCatalog(races.Races, classes.Classes, backgrounds.Backgrounds, subclasses.Subclasses)
}

func newCatalog(
	races []*internalDnd5e.Race,
	classes []*internalDnd5e.Class,
	backgrounds []*internalDnd5e.Background,
	subclasses []*internalDnd5e.Subclass,
) (*catalog, error) {
	c := &catalog{
		races:           races,
		classes:         classes,
		backgrounds:     backgrounds,
		subclasses:      subclasses,
		raceIndex:       make(map[string]*internalDnd5e.Race),
		classIndex:      make(map[string]*internalDnd5e.Class),
		backgroundIndex: make(map[string]*internalDnd5e.Background),
	}

	for _, r := range races {
		if err := addIndex(c.raceIndex, r.ID, r.Name, r); err != nil {
			return nil, err
		}
	}
	for _, cl := range classes {
		if err := addIndex(c.classIndex, cl.ID, cl.Name, cl); err != nil {
			return nil, err
		}
	}
	for _, b := range backgrounds {
		if err := addIndex(c.backgroundIndex, b.ID, b.Name, b); err != nil {
			return nil, err
		}
	}
	for _, s := range subclasses {
		if _, ok := c.classIndex[indexKey(s.ClassID)]; !ok {
			return nil, errors.Internalf("subclass %q references unknown class %q", s.ID, s.ClassID)
		}
	}

	return c, nil
}

func indexKey(s string) string {
	return internalDnd5e.NormalizeName(s)
}

func addIndex[T any](index map[string]*T, id, name string, item *T) error {
	if id == "" {
		return errors.Internalf("reference entry %q has no id", name)
	}
	if _, dup := index[indexKey(id)]; dup {
		return errors.Internalf("duplicate reference id %q", id)
	}
	index[indexKey(id)] = item
	if name != "" {
		if _, taken := index[indexKey(name)]; !taken {
			index[indexKey(name)] = item
		}
	}
	return nil
}

func lookup[T any](index map[string]*T, kind, id string) (*T, error) {
	if id == "" {
		return nil, errors.InvalidArgumentf("%s id is required", kind)
	}
	item, ok := index[indexKey(id)]
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("%s %q not found", kind, id))
	}
	return item, nil
}

func (c *catalog) ListRaces(_ context.Context) ([]*internalDnd5e.Race, error) {
	return append([]*internalDnd5e.Race(nil), c.races...), nil
}

func (c *catalog) GetRace(_ context.Context, raceID string) (*internalDnd5e.Race, error) {
	return lookup(c.raceIndex, "race", raceID)
}

func (c *catalog) ListClasses(_ context.Context) ([]*internalDnd5e.Class, error) {
	return append([]*internalDnd5e.Class(nil), c.classes...), nil
}

func (c *catalog) GetClass(_ context.Context, classID string) (*internalDnd5e.Class, error) {
	return lookup(c.classIndex, "class", classID)
}

func (c *catalog) ListBackgrounds(_ context.Context) ([]*internalDnd5e.Background, error) {
	return append([]*internalDnd5e.Background(nil), c.backgrounds...), nil
}

func (c *catalog) GetBackground(_ context.Context, backgroundID string) (*internalDnd5e.Background, error) {
	return lookup(c.backgroundIndex, "background", backgroundID)
}

func (c *catalog) ListSubclasses(_ context.Context, classID string) ([]*internalDnd5e.Subclass, error) {
	if classID == "" {
		return append([]*internalDnd5e.Subclass(nil), c.subclasses...), nil
	}

	class, err := lookup(c.classIndex, "class", classID)
	if err != nil {
		return nil, err
	}

	out := make([]*internalDnd5e.Subclass, 0, 4)
	for _, s := range c.subclasses {
		if indexKey(s.ClassID) == indexKey(class.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *catalog) ListSkills(_ context.Context) ([]*internalDnd5e.Skill, error) {
	out := make([]*internalDnd5e.Skill, len(internalDnd5e.Skills))
	for i := range internalDnd5e.Skills {
		skill := internalDnd5e.Skills[i]
		out[i] = &skill
	}
	return out, nil
}
