package main

import (
	"bytes"

	extension "github.com/mhoffma/bob.extension"
	"github.com/mhoffma/bob.extension/manifest"
	"github.com/spf13/cobra"
)

var (
	flagAlignment int
	flagUsage     bool
)

var renderCmd = &cobra.Command{
	Use:   "render <manifest>",
	Short: "Render the docstrings of a manifest",
	Long:  "Loads a YAML manifest and renders the reStructuredText docstring of every entry: variables, functions, classes, and highlighted class members.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagAlignment, "alignment", extension.DefaultAlignment, "line width for word wrapping")
	renderCmd.Flags().BoolVar(&flagUsage, "usage", false, "render the short usage listings instead of full docstrings")
}

func runRender(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return outputError("render", err)
	}
	return outputResult(CLIResult{
		Command: "render",
		Results: renderEntries(m.Build(), flagAlignment, flagUsage),
	})
}

// renderEntries renders every built entry in manifest order: variables,
// then functions, then each class followed by its members. Usage mode
// lists only the callable entries.
func renderEntries(b *manifest.Built, alignment int, usage bool) []CLIDocEntry {
	var entries []CLIDocEntry

	if !usage {
		for _, v := range b.Variables {
			entries = append(entries, CLIDocEntry{Kind: "variable", Name: v.Name(), Doc: v.Render(alignment)})
		}
	}
	for _, f := range b.Functions {
		entries = append(entries, CLIDocEntry{Kind: "function", Name: f.Name(), Doc: renderFunction(f, alignment, usage)})
	}
	for _, c := range b.Classes {
		entries = append(entries, CLIDocEntry{Kind: "class", Name: c.Class.Name(), Doc: renderClass(c.Class, alignment, usage)})
		for _, m := range c.Methods {
			entries = append(entries, CLIDocEntry{Kind: "method", Name: c.Class.Name() + "." + m.Name(), Doc: renderFunction(m, alignment, usage)})
		}
		if usage {
			continue
		}
		for _, a := range c.Attributes {
			entries = append(entries, CLIDocEntry{Kind: "attribute", Name: c.Class.Name() + "." + a.Name(), Doc: a.Render(alignment)})
		}
	}
	return entries
}

func renderFunction(f *extension.FunctionDoc, alignment int, usage bool) string {
	if usage {
		var buf bytes.Buffer
		f.WriteUsage(&buf)
		return buf.String()
	}
	return f.Render(alignment, 0)
}

func renderClass(c *extension.ClassDoc, alignment int, usage bool) string {
	if usage {
		var buf bytes.Buffer
		c.WriteUsage(&buf)
		return buf.String()
	}
	return c.Render(alignment)
}
