// Package extension renders the docstrings of binding extensions:
// plain-text reStructuredText with careful line breaks, prototype
// listings, keyword lists, and documentation coverage checks.
//
// # Entries
//
// Three entry kinds cover a binding surface:
//
//   - [VariableDoc] documents a constant, module attribute, or class
//     attribute.
//   - [FunctionDoc] documents a free function, method, or constructor,
//     including every prototypical way to call it.
//   - [ClassDoc] documents a class together with its constructor and the
//     members worth highlighting on the class page.
//
// # Usage
//
// Describe each entry once at startup, chaining the builders, then hand
// the rendered text and keyword lists to the binding layer:
//
//	var add = extension.NewFunction("add", "Adds two arrays.").
//		AddPrototype("x, y", "sum").
//		AddParameter("x", "array", "The first operand.").
//		AddParameter("y", "array", "The second operand.").
//		AddReturn("sum", "array", "The element-wise sum.")
//
//	doc := add.Doc()
//	kwlist := add.KeywordNames(0)
//
// Names declared in a prototype but never documented (or documented but
// never declared) do not fail anything: rendering inserts ".. todo::"
// advisories instead, so the gaps show up in the generated pages.
//
// # Freezing
//
// Entries follow a build-then-freeze lifecycle. Populate them during
// initialization from a single goroutine; the first call to Doc or Render
// fixes the output, and later calls return the same text regardless of
// their arguments. Frozen entries are safe for concurrent reads. Calling
// a builder after rendering, or rendering concurrently with building, is
// a programming error.
//
// # Short builds
//
// Compiling with the shortdocs build tag strips everything but the short
// descriptions: long paragraphs are dropped, the builders for parameters,
// returns, and highlights become no-ops, and rendering returns the
// description unchanged. Keyword lists and usage listings survive, so
// bindings built either way behave the same at call time.
package extension
