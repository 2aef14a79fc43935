package extension

import "github.com/mhoffma/bob.extension/internal/align"

// VariableDoc describes a constant, module attribute, or class attribute.
type VariableDoc struct {
	name        string
	typ         string
	description string

	rendered string
}

// NewVariable creates the documentation for a variable with the given name
// and type annotation. The short description is mandatory; further
// paragraphs may follow.
func NewVariable(name, typ, short string, long ...string) *VariableDoc {
	return &VariableDoc{name: name, typ: typ, description: joinParagraphs(short, long)}
}

// Name returns the variable name as given to NewVariable.
func (v *VariableDoc) Name() string { return v.name }

// Doc renders the variable documentation at the default line width.
func (v *VariableDoc) Doc() string { return v.Render(DefaultAlignment) }

// Render renders the variable documentation aligned to the given width as
// a "type  <-- description" line. The first call fixes the result; later
// calls return it unchanged.
func (v *VariableDoc) Render(alignment int) string {
	if shortDescriptions {
		return v.description
	}
	if v.rendered == "" {
		if isRole(v.typ) {
			v.rendered = align.Align(v.typ+"  <-- "+v.description, 0, alignment)
		} else {
			v.rendered = align.Align("*"+v.typ+"*  <-- "+v.description, 0, alignment)
		}
	}
	return v.rendered
}
