package deepcopy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/catmap/internal/deepcopy"
)

func TestMappingIsIndependent(t *testing.T) {
	src := map[string]any{
		"a": []any{map[string]any{"x": 1.0}, "s"},
		"b": map[string]any{"nested": nil},
		"c": 3,
	}
	cp := deepcopy.Mapping(src)
	require.Equal(t, src, cp)

	cp["c"] = 99
	cp["a"].([]any)[0].(map[string]any)["x"] = 2.0
	cp["b"].(map[string]any)["nested"] = "filled"

	assert.Equal(t, 3, src["c"])
	assert.Equal(t, 1.0, src["a"].([]any)[0].(map[string]any)["x"])
	assert.Nil(t, src["b"].(map[string]any)["nested"])
}

func TestEmptyContainersPreserved(t *testing.T) {
	v := deepcopy.Node(map[string]any{"empty": []any{}})
	m := v.(map[string]any)
	seq, ok := m["empty"].([]any)
	require.True(t, ok)
	assert.NotNil(t, seq)
	assert.Len(t, seq, 0)
}

func TestTypedSlicesGetOwnBackingArray(t *testing.T) {
	src := map[string]any{"codes": []string{"BHZ", "BHN"}, "none": []string{}}
	cp := deepcopy.Mapping(src)
	require.Equal(t, src, cp)

	cp["codes"].([]string)[0] = "HHZ"

	assert.Equal(t, "BHZ", src["codes"].([]string)[0])
	assert.Len(t, cp["none"].([]string), 0)
}

func TestNilMapping(t *testing.T) {
	assert.Nil(t, deepcopy.Mapping(nil))
}
