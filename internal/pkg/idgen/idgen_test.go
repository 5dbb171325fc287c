package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xSalik/statsproject/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("run").Generate()
	require.True(t, strings.HasPrefix(id, "run_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "run_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)

	assert.NotEqual(t, id, idgen.NewUUID("run").Generate())
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("run")
	assert.Equal(t, "run_1", g.Generate())
	assert.Equal(t, "run_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
