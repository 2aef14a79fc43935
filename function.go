package extension

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mhoffma/bob.extension/internal/align"
	"github.com/mhoffma/bob.extension/internal/coverage"
)

// FunctionDoc describes a function, method, or constructor, including
// every prototypical way to call it.
type FunctionDoc struct {
	name        string
	description string
	member      bool

	protos  []prototype
	params  []argDoc
	returns []argDoc

	rendered string
}

// NewFunction creates the documentation for a free function with the
// given name. The short description is mandatory; further paragraphs may
// follow.
func NewFunction(name, short string, long ...string) *FunctionDoc {
	return &FunctionDoc{name: name, description: joinParagraphs(short, long)}
}

// NewMethod creates the documentation for a class member function. Member
// docstrings are embedded four columns deep on the class page, so they
// render that much narrower.
func NewMethod(name, short string, long ...string) *FunctionDoc {
	return &FunctionDoc{name: name, description: joinParagraphs(short, long), member: true}
}

// Name returns the function name as given to NewFunction.
func (f *FunctionDoc) Name() string { return f.name }

// AddPrototype registers one way to call the function. params is the
// comma-joined parameter list, for example "x, y" or "x, [y]" for an
// optional y. retval names the returned value; it defaults to NoValue,
// and an explicit "" renders the bold constructor form instead of an
// arrow. The keyword list of the prototype is derived from params
// immediately.
func (f *FunctionDoc) AddPrototype(params string, retval ...string) *FunctionDoc {
	ret := NoValue
	if len(retval) > 0 {
		ret = retval[0]
	}
	names := align.Split(params, ',')
	kwlist := make([]string, len(names))
	for i, name := range names {
		kwlist[i] = align.Strip(name)
	}
	f.protos = append(f.protos, prototype{params: params, retval: ret, kwlist: kwlist})
	return f
}

// AddParameter documents one parameter named in the prototypes. No-op in
// shortdocs builds.
func (f *FunctionDoc) AddParameter(name, typ, description string) *FunctionDoc {
	if !shortDescriptions {
		f.params = append(f.params, argDoc{name: name, typ: typ, desc: description})
	}
	return f
}

// AddReturn documents one return value named in the prototypes. No-op in
// shortdocs builds.
func (f *FunctionDoc) AddReturn(name, typ, description string) *FunctionDoc {
	if !shortDescriptions {
		f.returns = append(f.returns, argDoc{name: name, typ: typ, desc: description})
	}
	return f
}

// KeywordNames returns the normalized parameter names of the prototype at
// the given index, in declaration order. It panics when no prototype with
// that index exists.
func (f *FunctionDoc) KeywordNames(index int) []string {
	if index < 0 || index >= len(f.protos) {
		panic("extension: the prototype for the given index is not found")
	}
	return append([]string(nil), f.protos[index].kwlist...)
}

// Doc renders the function documentation at the default line width.
func (f *FunctionDoc) Doc() string { return f.Render(DefaultAlignment, 0) }

// Render renders the function documentation with every physical line
// padded by indent spaces and wrapped at the given width: the prototype
// lines, the description, coverage advisories, and the documented
// parameters and return values. The first call fixes the result; later
// calls return it unchanged.
func (f *FunctionDoc) Render(alignment, indent int) string {
	if shortDescriptions {
		return f.description
	}
	if f.rendered != "" {
		return f.rendered
	}
	// Member docstrings end up embedded four columns deep on the class
	// page, so their effective width shrinks accordingly.
	width := alignment
	if f.member {
		width = alignment - 4
	}

	var out strings.Builder
	switch len(f.protos) {
	case 0:
		out.WriteString(align.Align(".. todo:: Please use ``FunctionDoc.AddPrototype`` to add at least one prototypical way to call this function", indent, align.NoLimit) + "\n")
	case 1:
		out.WriteString(align.Align(f.prototypeLine(f.protos[0]), indent, align.NoLimit) + "\n")
	default:
		for _, p := range f.protos {
			out.WriteString(align.Align("* "+f.prototypeLine(p), indent, align.NoLimit) + "\n")
		}
	}
	out.WriteString("\n" + align.Align(f.description, indent, width) + "\n")

	out.WriteString(coverage.Check(f.declaredParams(), argNames(f.params), "parameter"))
	out.WriteString(coverage.Check(f.declaredReturns(), argNames(f.returns), "return value"))

	if len(f.params) > 0 {
		out.WriteString("\n" + align.Align("**Parameters:**", indent, width) + "\n\n")
		for _, p := range f.params {
			writeArg(&out, p, indent, width)
		}
	}
	if len(f.returns) > 0 {
		out.WriteString("\n" + align.Align("**Returns:**", indent, width) + "\n\n")
		for _, r := range f.returns {
			writeArg(&out, r, indent, width)
		}
	}
	f.rendered = out.String()
	return f.rendered
}

// WriteUsage writes the usage listing to w: a header followed by one call
// form per prototype.
func (f *FunctionDoc) WriteUsage(w io.Writer) {
	fmt.Fprint(w, "\nUsage (for details, see help):\n")
	switch len(f.protos) {
	case 0:
		fmt.Fprint(w, align.Align("Error: The usage of this function is unknown", 0, align.NoLimit)+"\n")
	case 1:
		fmt.Fprint(w, align.Align(f.usageLine(f.protos[0]), 0, align.NoLimit)+"\n")
	default:
		for _, p := range f.protos {
			fmt.Fprint(w, align.Align(f.usageLine(p), 0, align.NoLimit)+"\n")
		}
	}
	fmt.Fprintln(w)
}

// PrintUsage writes the usage listing to standard error.
func (f *FunctionDoc) PrintUsage() { f.WriteUsage(os.Stderr) }

// prototypeLine renders one prototype for the documentation header. An
// empty return annotation renders the bold constructor form.
func (f *FunctionDoc) prototypeLine(p prototype) string {
	if p.retval == "" {
		return "**" + f.name + "** (" + p.params + ")"
	}
	return f.name + "(" + p.params + ") -> " + p.retval
}

// usageLine renders one prototype for the usage listing.
func (f *FunctionDoc) usageLine(p prototype) string {
	if p.retval == "" {
		return f.name + "(" + p.params + ")"
	}
	return f.name + "(" + p.params + ") -> " + p.retval
}

// declaredParams returns the parameter lists of all prototypes.
func (f *FunctionDoc) declaredParams() []string {
	lists := make([]string, len(f.protos))
	for i, p := range f.protos {
		lists[i] = p.params
	}
	return lists
}

// declaredReturns returns the return annotations of all prototypes.
func (f *FunctionDoc) declaredReturns() []string {
	lists := make([]string, len(f.protos))
	for i, p := range f.protos {
		lists[i] = p.retval
	}
	return lists
}

// argNames projects documented arguments onto their names.
func argNames(args []argDoc) []string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.name
	}
	return names
}

// writeArg renders one documented parameter or return value: the name and
// type on one line, the description indented underneath.
func writeArg(out *strings.Builder, a argDoc, indent, width int) {
	if isRole(a.typ) {
		out.WriteString(align.Align("``"+a.name+"`` : "+a.typ, indent, width) + "\n\n")
	} else {
		out.WriteString(align.Align("``"+a.name+"`` : *"+a.typ+"*", indent, width) + "\n\n")
	}
	out.WriteString(align.Align(a.desc, indent+4, width) + "\n\n")
}

// clone returns a deep copy with an unfrozen render cache. Keyword lists
// are copied so the clone stays isolated from later changes to the
// original.
func (f *FunctionDoc) clone() *FunctionDoc {
	c := *f
	c.protos = make([]prototype, len(f.protos))
	for i, p := range f.protos {
		p.kwlist = append([]string(nil), p.kwlist...)
		c.protos[i] = p
	}
	c.params = append([]argDoc(nil), f.params...)
	c.returns = append([]argDoc(nil), f.returns...)
	c.rendered = ""
	return &c
}
