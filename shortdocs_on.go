//go:build shortdocs

package extension

// shortDescriptions selects the reduced rendering mode. Under the
// shortdocs tag every entry keeps only its short description: long
// paragraphs, parameter and return documentation, and highlights are
// dropped at build time. Keyword lists and usage listings are kept.
const shortDescriptions = true
