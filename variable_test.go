//go:build !shortdocs

package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableDoc_PlainType(t *testing.T) {
	t.Parallel()
	v := NewVariable("version", "str", "The version of the library.")
	assert.Equal(t, "*str*  <-- The version of the library. ", v.Doc())
}

func TestVariableDoc_RoleTypePassedVerbatim(t *testing.T) {
	t.Parallel()
	v := NewVariable("data", ":py:class:`numpy.ndarray`", "The stored data.")
	assert.Equal(t, ":py:class:`numpy.ndarray`  <-- The stored data. ", v.Doc())
}

func TestVariableDoc_LongDescriptionParagraphs(t *testing.T) {
	t.Parallel()
	v := NewVariable("eps", "float", "Precision.", "Used as the convergence bound.")
	assert.Equal(t, "*float*  <-- Precision. \n \nUsed as the convergence bound. ", v.Doc())
}

func TestVariableDoc_RenderCachesFirstResult(t *testing.T) {
	t.Parallel()
	v := NewVariable("rate", "float", "The sampling rate of the input signal in Hertz.")
	first := v.Render(72)
	assert.Equal(t, first, v.Render(10))
}

func TestVariableDoc_Name(t *testing.T) {
	t.Parallel()
	v := NewVariable("rate", "float", "The sampling rate.")
	assert.Equal(t, "rate", v.Name())
}
