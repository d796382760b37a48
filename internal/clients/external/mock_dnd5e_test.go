package external

import (
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/mock"
)

// mockDND5eClient is a testify mock of dnd5e.Interface. Nil returns are allowed.
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Race)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(dnd5e.EquipmentInterface)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.EquipmentCategory)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Class)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Spell)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Feature)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Skill)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Monster)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	v, _ := args.Get(0).(*entities.Level)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Proficiency)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.DamageType)
	return v, args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	v, _ := args.Get(0).([]*entities.ReferenceItem)
	return v, args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	v, _ := args.Get(0).(*entities.Background)
	return v, args.Error(1)
}

var _ dnd5e.Interface = (*mockDND5eClient)(nil)
