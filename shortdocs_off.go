//go:build !shortdocs

package extension

// shortDescriptions selects the reduced rendering mode. Regular builds
// render the full layout.
const shortDescriptions = false
