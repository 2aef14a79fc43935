package manifest

import extension "github.com/mhoffma/bob.extension"

// Built holds the extension entries compiled from a manifest.
type Built struct {
	Package   string
	Variables []*extension.VariableDoc
	Functions []*extension.FunctionDoc
	Classes   []BuiltClass
}

// BuiltClass pairs a compiled class with its highlighted methods and
// attributes, so callers can render the members individually.
type BuiltClass struct {
	Class      *extension.ClassDoc
	Methods    []*extension.FunctionDoc
	Attributes []*extension.VariableDoc
}

// Build compiles every entry of the manifest. A validated manifest always
// builds; documentation gaps surface as advisories in the rendered output,
// not as errors here.
func (m *Manifest) Build() *Built {
	b := &Built{Package: m.Package}
	for _, v := range m.Variables {
		b.Variables = append(b.Variables, buildVariable(v))
	}
	for _, f := range m.Functions {
		b.Functions = append(b.Functions, buildFunction(f))
	}
	for _, c := range m.Classes {
		b.Classes = append(b.Classes, buildClass(c))
	}
	return b
}

func buildVariable(v Variable) *extension.VariableDoc {
	return extension.NewVariable(v.Name, v.Type, v.Summary, v.Details...)
}

func buildFunction(f Function) *extension.FunctionDoc {
	var doc *extension.FunctionDoc
	if f.Member {
		doc = extension.NewMethod(f.Name, f.Summary, f.Details...)
	} else {
		doc = extension.NewFunction(f.Name, f.Summary, f.Details...)
	}
	for _, p := range f.Prototypes {
		if p.Returns == nil {
			doc.AddPrototype(p.Params)
		} else {
			doc.AddPrototype(p.Params, *p.Returns)
		}
	}
	for _, a := range f.Parameters {
		doc.AddParameter(a.Name, a.Type, a.Description)
	}
	for _, a := range f.Returns {
		doc.AddReturn(a.Name, a.Type, a.Description)
	}
	return doc
}

func buildClass(c Class) BuiltClass {
	doc := extension.NewClass(c.Name, c.Summary, c.Details...)
	built := BuiltClass{Class: doc}
	if c.Constructor != nil {
		ctor := *c.Constructor
		if ctor.Name == "" {
			ctor.Name = c.Name
		}
		ctor.Member = false
		doc.AddConstructor(buildFunction(ctor))
	}
	for _, m := range c.Methods {
		m.Member = true
		method := buildFunction(m)
		doc.Highlight(method)
		built.Methods = append(built.Methods, method)
	}
	for _, a := range c.Attributes {
		attr := buildVariable(a)
		doc.HighlightVariable(attr)
		built.Attributes = append(built.Attributes, attr)
	}
	return built
}
