//go:build !shortdocs

package extension

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// goldenBuilders maps each fixture under testdata/ to the builder that
// reproduces its rendering. To add a case, add the expected bytes as
// testdata/<name>.golden and register the builder here.
var goldenBuilders = map[string]func() string{
	"function_histogram": func() string { return histogramDoc().Doc() },
	"class_gaussian":     func() string { return gaussianDoc().Doc() },
	"variable_version":   func() string { return versionDoc().Doc() },
}

// histogramDoc documents a free function with an optional parameter, a
// markup-role type, and a named return value.
func histogramDoc() *FunctionDoc {
	return NewFunction("histogram", "Computes the histogram of an image.").
		AddPrototype("image, [bins]", "hist").
		AddParameter("image", ":py:class:`numpy.ndarray`", "The input image.").
		AddParameter("bins", "int", "The number of bins to use.").
		AddReturn("hist", ":py:class:`numpy.ndarray`", "The computed histogram.")
}

// gaussianDoc documents a class with a constructor, a highlighted method,
// and a highlighted attribute.
func gaussianDoc() *ClassDoc {
	ctor := NewFunction("__init__", "Creates a Gaussian.").
		AddPrototype("mean, [variance]", "").
		AddParameter("mean", ":py:class:`numpy.ndarray`", "The mean of the distribution.").
		AddParameter("variance", "float", "The diagonal variance; defaults to one.")
	return NewClass("Gaussian", "A multivariate Gaussian.",
		"The Gaussian is defined by its mean and its diagonal covariance.").
		AddConstructor(ctor).
		Highlight(NewMethod("probability", "Computes the probability of a sample.")).
		HighlightVariable(NewVariable("mean", ":py:class:`numpy.ndarray`", "The mean of the Gaussian."))
}

// versionDoc documents a plain module attribute.
func versionDoc() *VariableDoc {
	return NewVariable("version", "str", "The version of the bound library.")
}

// TestGolden renders each documented entry and compares it byte for byte
// against its fixture. Trailing spaces in the fixtures are significant.
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.golden"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".golden")
		build, ok := goldenBuilders[name]
		require.True(t, ok, "no builder registered for fixture %s", name)

		t.Run(name, func(t *testing.T) {
			want, err := os.ReadFile(path)
			require.NoError(t, err)

			got := build()
			if got == string(want) {
				return
			}
			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(want)),
				B:        difflib.SplitLines(got),
				FromFile: path,
				ToFile:   "rendered",
				Context:  3,
			})
			require.NoError(t, err)
			t.Errorf("rendering differs from fixture:\n%s", diff)
		})
	}
}
