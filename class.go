package extension

import (
	"io"
	"os"
	"strings"

	"github.com/mhoffma/bob.extension/internal/align"
)

// ClassDoc describes a class: its constructor and the methods and
// attributes worth highlighting on the class page.
type ClassDoc struct {
	name        string
	description string
	ctor        *FunctionDoc
	methods     []*FunctionDoc
	attributes  []*VariableDoc

	rendered string
}

// NewClass creates the documentation for a class with the given name. The
// short description is mandatory; further paragraphs may follow.
func NewClass(name, short string, long ...string) *ClassDoc {
	return &ClassDoc{name: name, description: joinParagraphs(short, long)}
}

// Name returns the class name as given to NewClass.
func (c *ClassDoc) Name() string { return c.name }

// AddConstructor attaches the constructor documentation. The constructor
// is deep-copied and renamed after the class; the class page indents it
// itself, so the copy is demoted to a non-member. A class has at most one
// constructor: attaching a second one panics and leaves the first in
// place.
func (c *ClassDoc) AddConstructor(ctor *FunctionDoc) *ClassDoc {
	if c.ctor != nil {
		panic("extension: the class documentation can have only a single constructor documentation")
	}
	cc := ctor.clone()
	cc.member = false
	cc.name = c.name
	c.ctor = cc
	return c
}

// Highlight adds a method to the class page summary. The method is
// deep-copied at call time. No-op in shortdocs builds.
func (c *ClassDoc) Highlight(f *FunctionDoc) *ClassDoc {
	if !shortDescriptions {
		c.methods = append(c.methods, f.clone())
	}
	return c
}

// HighlightVariable adds an attribute to the class page summary. The
// attribute is copied at call time. No-op in shortdocs builds.
func (c *ClassDoc) HighlightVariable(v *VariableDoc) *ClassDoc {
	if !shortDescriptions {
		attr := *v
		c.attributes = append(c.attributes, &attr)
	}
	return c
}

// Doc renders the class documentation at the default line width.
func (c *ClassDoc) Doc() string { return c.Render(DefaultAlignment) }

// Render renders the class documentation aligned to the given width: the
// class description, the constructor documentation indented four columns,
// and one summary line per highlighted method and attribute. The first
// call fixes the result and freezes the constructor with it; later calls
// return it unchanged.
func (c *ClassDoc) Render(alignment int) string {
	if shortDescriptions {
		return c.description
	}
	if c.rendered != "" {
		return c.rendered
	}
	var out strings.Builder
	out.WriteString(align.Align(c.description, 0, alignment) + "\n")
	if c.ctor != nil {
		out.WriteString("\n" + align.Align("**Constructor Documentation:**", 0, alignment) + "\n\n")
		out.WriteString(c.ctor.Render(alignment, 4) + "\n")
	}
	out.WriteString("\n" + align.Align("**Class Members:**", 0, alignment) + "\n\n")
	if len(c.methods) > 0 {
		out.WriteString("\n" + align.Align("**Highlighted Methods:**", 2, alignment) + "\n\n")
		for _, m := range c.methods {
			out.WriteString(align.Align("* :func:`"+m.name+"`", 2, alignment) + align.Align(firstLine(m.description), 4, alignment) + "\n")
		}
	}
	if len(c.attributes) > 0 {
		out.WriteString("\n" + align.Align("**Highlighted Attributes:**", 2, alignment) + "\n\n")
		for _, a := range c.attributes {
			out.WriteString(align.Align("* :obj:`"+a.name+"`", 2, alignment) + align.Align(firstLine(a.description), 4, alignment) + "\n")
		}
	}
	c.rendered = out.String()
	return c.rendered
}

// KeywordNames returns the normalized parameter names of the constructor
// prototype at the given index. It panics when the class has no
// constructor documentation or when the index is out of range.
func (c *ClassDoc) KeywordNames(index int) []string {
	if c.ctor == nil {
		panic("extension: the class documentation does not have constructor documentation")
	}
	return c.ctor.KeywordNames(index)
}

// WriteUsage writes the constructor usage listing to w. A class without
// constructor documentation writes nothing.
func (c *ClassDoc) WriteUsage(w io.Writer) {
	if c.ctor != nil {
		c.ctor.WriteUsage(w)
	}
}

// PrintUsage writes the constructor usage listing to standard error.
func (c *ClassDoc) PrintUsage() { c.WriteUsage(os.Stderr) }

// firstLine returns the first logical line of a description.
func firstLine(description string) string {
	return align.Split(description, '\n')[0]
}
