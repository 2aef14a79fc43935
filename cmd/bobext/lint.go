package main

import (
	"fmt"
	"strings"

	extension "github.com/mhoffma/bob.extension"
	"github.com/mhoffma/bob.extension/manifest"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <manifest>",
	Short: "Report documentation gaps in a manifest",
	Long:  "Renders every entry of a YAML manifest and reports the \".. todo::\" advisories found in the output: undocumented parameters and return values, documented names no prototype uses, and functions without prototypes.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return outputError("lint", err)
	}
	findings := lintEntries(m.Build())
	if err := outputResult(CLIResult{Command: "lint", Results: findings}); err != nil {
		return err
	}
	if len(findings) > 0 {
		errorHandled = true
		return fmt.Errorf("%d documentation gap(s)", len(findings))
	}
	return nil
}

// lintEntries renders every callable entry at the default width and
// collects the advisories from the output. Constructor advisories surface
// through the class rendering.
func lintEntries(b *manifest.Built) []CLIFinding {
	var findings []CLIFinding
	for _, f := range b.Functions {
		findings = append(findings, findingsFor("function "+f.Name(), f.Render(extension.DefaultAlignment, 0))...)
	}
	for _, c := range b.Classes {
		findings = append(findings, findingsFor("class "+c.Class.Name(), c.Class.Render(extension.DefaultAlignment))...)
		for _, m := range c.Methods {
			findings = append(findings, findingsFor("method "+c.Class.Name()+"."+m.Name(), m.Render(extension.DefaultAlignment, 0))...)
		}
	}
	return findings
}

// findingsFor extracts the ".. todo::" advisory lines from a rendered
// docstring. Advisories never wrap, so each one is a single line.
func findingsFor(entry, doc string) []CLIFinding {
	var findings []CLIFinding
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ".. todo::") {
			continue
		}
		findings = append(findings, CLIFinding{
			Entry:   entry,
			Message: strings.TrimSpace(strings.TrimPrefix(trimmed, ".. todo::")),
		})
	}
	return findings
}
