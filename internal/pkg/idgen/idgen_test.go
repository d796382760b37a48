package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/charforge/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("draft")
	assert.Equal(t, "draft_1", gen.Generate())
	assert.Equal(t, "draft_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	gen := idgen.NewUUID("char")
	a, b := gen.Generate(), gen.Generate()

	assert.True(t, strings.HasPrefix(a, "char_"))
	assert.Len(t, a, len("char_")+36)
	assert.NotEqual(t, a, b)
}
