package main

import (
	"fmt"

	"github.com/mhoffma/bob.extension/buildenv"
	"github.com/spf13/cobra"
)

var (
	flagRoots    []string
	flagSubpaths []string
	flagVersion  string
	flagStatic   bool
)

var findCmd = &cobra.Command{
	Use:   "find <kind> <name>",
	Short: "Locate headers, libraries, or files across installation prefixes",
	Long:  "Searches the configured installation prefixes, and any listed in BOB_PREFIX_PATH, for a header, a library, or a plain file, and prints every match.",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringSliceVar(&flagRoots, "root", nil, "installation prefix to search (repeatable; default /usr, /usr/local, /opt/local)")
	findCmd.Flags().StringSliceVar(&flagSubpaths, "subpath", nil, "prefix-relative directory to search (repeatable; may contain globs)")
	findCmd.Flags().StringVar(&flagVersion, "version", "", "prefer versioned library names, e.g. 1.2.3")
	findCmd.Flags().BoolVar(&flagStatic, "static", false, "restrict library searches to static archives")
}

func runFind(cmd *cobra.Command, args []string) error {
	kind, name := args[0], args[1]

	var opts []buildenv.Option
	if len(flagRoots) > 0 {
		opts = append(opts, buildenv.WithRoots(flagRoots...))
	}
	if len(flagSubpaths) > 0 {
		opts = append(opts, buildenv.WithSubpaths(flagSubpaths...))
	}
	if flagVersion != "" {
		opts = append(opts, buildenv.WithVersion(flagVersion))
	}
	if flagStatic {
		opts = append(opts, buildenv.WithStaticOnly())
	}

	var paths []string
	switch kind {
	case "header":
		paths = buildenv.FindHeader(name, opts...)
	case "library":
		paths = buildenv.FindLibrary(name, opts...)
	case "file":
		paths = buildenv.FindFile(name, opts...)
	default:
		return outputError("find", fmt.Errorf("unknown kind %q: must be header, library, or file", kind))
	}

	if len(paths) == 0 {
		return outputError("find", fmt.Errorf("no %s named %q found", kind, name))
	}
	return outputResult(CLIResult{Command: "find", Results: paths})
}
