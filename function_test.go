//go:build !shortdocs

package extension

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionDoc_SinglePrototype(t *testing.T) {
	t.Parallel()
	f := NewFunction("add", "Adds two numbers.").AddPrototype("x, y", "sum")
	want := "add(x, y) -> sum \n" +
		"\nAdds two numbers. \n" +
		"\n.. todo:: The parameter(s) 'x, y' are used, but not documented. \n" +
		"\n.. todo:: The return value(s) 'sum' are used, but not documented. \n"
	assert.Equal(t, want, f.Doc())
}

func TestFunctionDoc_FullyDocumented(t *testing.T) {
	t.Parallel()
	f := NewFunction("add", "Adds two numbers.").
		AddPrototype("x, y", "sum").
		AddParameter("x", "int", "The first addend.").
		AddParameter("y", "int", "The second addend.").
		AddReturn("sum", "int", "The sum of both.")
	want := "add(x, y) -> sum \n" +
		"\nAdds two numbers. \n" +
		"\n**Parameters:** \n\n" +
		"``x`` : *int* \n\n" +
		"    The first addend. \n\n" +
		"``y`` : *int* \n\n" +
		"    The second addend. \n\n" +
		"\n**Returns:** \n\n" +
		"``sum`` : *int* \n\n" +
		"    The sum of both. \n\n"
	assert.Equal(t, want, f.Doc())
}

func TestFunctionDoc_NoneReturnNeverFlagged(t *testing.T) {
	t.Parallel()
	f := NewFunction("reset", "Resets the accumulator.").AddPrototype("")
	assert.Equal(t, "reset() -> None \n\nResets the accumulator. \n", f.Doc())
}

func TestFunctionDoc_ConstructorForm(t *testing.T) {
	t.Parallel()
	f := NewFunction("Gaussian", "Creates a Gaussian.").AddPrototype("mean, std", "")
	want := "**Gaussian** (mean, std) \n" +
		"\nCreates a Gaussian. \n" +
		"\n.. todo:: The parameter(s) 'mean, std' are used, but not documented. \n"
	assert.Equal(t, want, f.Doc())
}

func TestFunctionDoc_MultiplePrototypesRenderAsBullets(t *testing.T) {
	t.Parallel()
	f := NewFunction("load", "Loads data.").
		AddPrototype("hdf5", "data").
		AddPrototype("path", "data")
	want := "* load(hdf5) -> data \n" +
		"* load(path) -> data \n" +
		"\nLoads data. \n" +
		"\n.. todo:: The parameter(s) 'hdf5, path' are used, but not documented. \n" +
		"\n.. todo:: The return value(s) 'data' are used, but not documented. \n"
	assert.Equal(t, want, f.Doc())
}

func TestFunctionDoc_NoPrototypeAdvisory(t *testing.T) {
	t.Parallel()
	f := NewFunction("mystery", "Does something.")
	want := ".. todo:: Please use ``FunctionDoc.AddPrototype`` to add at least one prototypical way to call this function \n" +
		"\nDoes something. \n"
	assert.Equal(t, want, f.Doc())
}

func TestFunctionDoc_MethodRendersNarrower(t *testing.T) {
	t.Parallel()
	fn := NewFunction("m", "aaaa bbbb cccc dddd").AddPrototype("x", "y")
	meth := NewMethod("m", "aaaa bbbb cccc dddd").AddPrototype("x", "y")
	assert.NotEqual(t, fn.Render(20, 0), meth.Render(20, 0))
}

func TestFunctionDoc_RoleTypeRendersVerbatim(t *testing.T) {
	t.Parallel()
	f := NewFunction("process", "Processes data.").
		AddPrototype("data").
		AddParameter("data", ":py:class:`numpy.ndarray`", "The input.")
	want := "process(data) -> None \n" +
		"\nProcesses data. \n" +
		"\n**Parameters:** \n\n" +
		"``data`` : :py:class:`numpy.ndarray` \n\n" +
		"    The input. \n\n"
	assert.Equal(t, want, f.Doc())
}

func TestFunctionDoc_LongDescriptionParagraphs(t *testing.T) {
	t.Parallel()
	f := NewFunction("run", "Runs.", "Second paragraph.").AddPrototype("")
	assert.Equal(t, "run() -> None \n\nRuns. \n \nSecond paragraph. \n", f.Doc())
}

func TestFunctionDoc_RenderIndents(t *testing.T) {
	t.Parallel()
	f := NewFunction("add", "Adds.").
		AddPrototype("x", "sum").
		AddParameter("x", "int", "The addend.").
		AddReturn("sum", "int", "The sum.")
	want := "    add(x) -> sum \n" +
		"\n    Adds. \n" +
		"\n    **Parameters:** \n\n" +
		"    ``x`` : *int* \n\n" +
		"        The addend. \n\n" +
		"\n    **Returns:** \n\n" +
		"    ``sum`` : *int* \n\n" +
		"        The sum. \n\n"
	assert.Equal(t, want, f.Render(72, 4))
}

func TestFunctionDoc_RenderCachesFirstResult(t *testing.T) {
	t.Parallel()
	f := NewFunction("add", "Adds two numbers together and returns the sum to the caller.").
		AddPrototype("x, y", "sum")
	first := f.Render(72, 0)
	assert.Equal(t, first, f.Render(20, 8))
}

func TestFunctionDoc_BuildersChain(t *testing.T) {
	t.Parallel()
	f := NewFunction("f", "Does f.")
	assert.Same(t, f, f.AddPrototype("x"))
	assert.Same(t, f, f.AddParameter("x", "int", "The input."))
	assert.Same(t, f, f.AddReturn("y", "int", "The output."))
}

func TestFunctionDoc_KeywordNames(t *testing.T) {
	t.Parallel()
	f := NewFunction("fit", "Fits a model.").
		AddPrototype("samples, [weights]", "mean").
		AddPrototype("")
	assert.Equal(t, []string{"samples", "weights"}, f.KeywordNames(0))
	assert.Equal(t, []string{""}, f.KeywordNames(1))
}

func TestFunctionDoc_KeywordNamesCopies(t *testing.T) {
	t.Parallel()
	f := NewFunction("fit", "Fits a model.").AddPrototype("a, b", "c")
	names := f.KeywordNames(0)
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, f.KeywordNames(0))
}

func TestFunctionDoc_KeywordNamesUnknownIndexPanics(t *testing.T) {
	t.Parallel()
	f := NewFunction("fit", "Fits a model.").AddPrototype("samples", "mean")
	assert.PanicsWithValue(t, "extension: the prototype for the given index is not found", func() {
		f.KeywordNames(1)
	})
}

func TestFunctionDoc_WriteUsage(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewFunction("add", "Adds.").AddPrototype("x, y", "sum").WriteUsage(&buf)
	assert.Equal(t, "\nUsage (for details, see help):\nadd(x, y) -> sum \n\n", buf.String())
}

func TestFunctionDoc_WriteUsageMultiplePrototypes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewFunction("load", "Loads data.").
		AddPrototype("hdf5", "data").
		AddPrototype("path", "data").
		WriteUsage(&buf)
	assert.Equal(t, "\nUsage (for details, see help):\nload(hdf5) -> data \nload(path) -> data \n\n", buf.String())
}

func TestFunctionDoc_WriteUsageUnknown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewFunction("mystery", "Does something.").WriteUsage(&buf)
	assert.Equal(t, "\nUsage (for details, see help):\nError: The usage of this function is unknown \n\n", buf.String())
}

func TestFunctionDoc_WriteUsageConstructorForm(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewFunction("Machine", "Creates a machine.").AddPrototype("size", "").WriteUsage(&buf)
	assert.Equal(t, "\nUsage (for details, see help):\nMachine(size) \n\n", buf.String())
}

func TestFunctionDoc_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "run", NewFunction("run", "Runs.").Name())
	assert.Equal(t, "stop", NewMethod("stop", "Stops.").Name())
}
