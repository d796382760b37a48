package sheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/sheet"
	"github.com/KirkDiggler/charforge/internal/testutils"
)

func TestRender(t *testing.T) {
	char := testutils.CreateTestCharacter("char_1", "player_1")
	char.Name = "Éowyn Dénethor"
	char.Equipment.BackgroundEquipmentOption = dnd5e.EquipmentOptionA

	out, err := sheet.Render(char)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 500)
}

func TestRenderEmptyLists(t *testing.T) {
	char := testutils.CreateTestCharacter("char_1", "player_1")
	char.Skills = nil
	char.Equipment = dnd5e.CharacterEquipment{}

	out, err := sheet.Render(char)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderNil(t *testing.T) {
	_, err := sheet.Render(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
