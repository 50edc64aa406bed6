package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	normalized := normalizeVector([]float32{3, 4})

	require.Len(t, normalized, 2)
	assert.InDelta(t, 0.6, normalized[0], 1e-6)
	assert.InDelta(t, 0.8, normalized[1], 1e-6)

	var magnitude float64
	for _, v := range normalized {
		magnitude += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
}

func TestNormalizeVectorZero(t *testing.T) {
	zero := []float32{0, 0, 0}
	assert.Equal(t, zero, normalizeVector(zero))
}

func TestNormalizeVectorAlreadyUnit(t *testing.T) {
	unit := []float32{1, 0, 0}
	normalized := normalizeVector(unit)
	assert.InDelta(t, 1.0, normalized[0], 1e-6)
	assert.InDelta(t, 0.0, normalized[1], 1e-6)
}
