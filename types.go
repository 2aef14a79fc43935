package extension

import "strings"

// DefaultAlignment is the line width used by the Doc methods.
const DefaultAlignment = 72

// NoValue marks a prototype that returns nothing. It is the default
// return annotation of AddPrototype and never shows up in coverage
// advisories.
const NoValue = "None"

// prototype is one way to call a function: a comma-joined parameter list,
// the name of the returned value, and the keyword list derived from the
// parameters.
type prototype struct {
	params string
	retval string
	kwlist []string
}

// argDoc documents a single parameter or return value.
type argDoc struct {
	name string
	typ  string
	desc string
}

// isRole reports whether a type annotation is a markup role like
// ":py:class:`Array`". Roles render verbatim; anything else is emphasized
// with asterisks.
func isRole(typ string) bool {
	return strings.Contains(typ, ":") && strings.Contains(typ, "`")
}

// joinParagraphs appends further description paragraphs to a short
// description, separated by blank lines. Extra paragraphs are dropped in
// shortdocs builds.
func joinParagraphs(short string, long []string) string {
	if shortDescriptions {
		return short
	}
	for _, paragraph := range long {
		short += "\n\n" + paragraph
	}
	return short
}
