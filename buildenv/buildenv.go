// Package buildenv locates the headers, libraries, and support files of a
// binding's native dependencies across installation prefixes, and reads
// the requirement listings that name them. Searches honor BOB_PREFIX_PATH,
// so builds against non-standard prefixes need no code changes.
package buildenv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// PrefixPathEnv names the environment variable holding a colon-separated
// list of installation prefixes searched before the configured roots.
const PrefixPathEnv = "BOB_PREFIX_PATH"

// defaultRoots are the prefixes searched when none are configured.
var defaultRoots = []string{"/usr", "/usr/local", "/opt/local"}

type config struct {
	roots      []string
	subpaths   []string
	version    string
	staticOnly bool
}

// Option adjusts a search.
type Option func(*config)

// WithRoots replaces the default installation prefixes.
func WithRoots(roots ...string) Option {
	return func(c *config) { c.roots = roots }
}

// WithSubpaths adds prefix-relative directories to search. Subpaths may
// contain glob patterns, so "boost?*" covers versioned install dirs.
func WithSubpaths(subpaths ...string) Option {
	return func(c *config) { c.subpaths = subpaths }
}

// WithVersion makes library searches list versioned names such as
// libfoo.so.1.2.3 before the unversioned ones.
func WithVersion(version string) Option {
	return func(c *config) { c.version = version }
}

// WithStaticOnly restricts a library search to static archives.
func WithStaticOnly() Option {
	return func(c *config) { c.staticOnly = true }
}

func newConfig(opts []Option) *config {
	c := &config{roots: defaultRoots}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchRoots returns the prefixes to search: the BOB_PREFIX_PATH entries
// first, then the configured roots, normalized and deduplicated.
func (c *config) searchRoots() []string {
	roots := c.roots
	if env := os.Getenv(PrefixPathEnv); env != "" {
		roots = append(strings.Split(env, ":"), roots...)
	}
	return UniqPaths(roots)
}

// Uniq deduplicates while preserving the order of first appearance.
func Uniq(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// UniqPaths brings paths into absolute, symlink-resolved form and
// deduplicates them, preserving order. Paths that cannot be resolved are
// kept in absolute form.
func UniqPaths(paths []string) []string {
	normalized := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		normalized = append(normalized, abs)
	}
	return Uniq(normalized)
}

// find globs the candidate names under every root and subpath combination.
// Roots are searched in order; within one directory the candidate names
// keep their order, so more specific names surface first.
func find(roots, subpaths, names []string) []string {
	var found []string
	for _, root := range roots {
		for _, sub := range subpaths {
			for _, name := range names {
				matches, err := filepath.Glob(filepath.Join(root, sub, name))
				if err != nil {
					continue
				}
				found = append(found, matches...)
			}
		}
	}
	return UniqPaths(found)
}

// FindFile searches every root, optionally under the configured subpaths,
// for files matching name. Name and subpaths may contain glob patterns.
func FindFile(name string, opts ...Option) []string {
	c := newConfig(opts)
	subpaths := c.subpaths
	if len(subpaths) == 0 {
		subpaths = []string{""}
	}
	return find(c.searchRoots(), subpaths, []string{name})
}

// FindHeader searches for an include file. The name may carry directory
// components, as in "blitz/array.h"; configured subpaths are searched
// under include/ as well.
func FindHeader(name string, opts ...Option) []string {
	c := newConfig(opts)
	subpaths := []string{"include"}
	for _, sub := range c.subpaths {
		subpaths = append(subpaths, filepath.Join("include", sub))
	}
	return find(c.searchRoots(), subpaths, []string{name})
}

// FindLibrary searches for a library under lib/ and lib64/. Shared
// libraries come before static archives, and versioned names come first
// when a version is configured.
func FindLibrary(name string, opts ...Option) []string {
	c := newConfig(opts)
	subpaths := []string{"lib", "lib64"}
	for _, sub := range c.subpaths {
		subpaths = append(subpaths, filepath.Join("lib", sub), filepath.Join("lib64", sub))
	}
	return find(c.searchRoots(), subpaths, c.libNames(name))
}

// libNames returns the candidate file names for a library, most specific
// first.
func (c *config) libNames(name string) []string {
	if c.staticOnly {
		return []string{"lib" + name + ".a"}
	}
	var names []string
	if c.version != "" {
		names = append(names, "lib"+name+".so."+c.version, "lib"+name+"."+c.version+".dylib")
	}
	return append(names, "lib"+name+".so", "lib"+name+".dylib", "lib"+name+".a")
}

// Egrep scans a file line by line and returns the submatches of every
// line matching the pattern. Anchor the pattern to match whole lines.
func Egrep(path, pattern string) ([][]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var matches [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := re.FindStringSubmatch(scanner.Text()); m != nil {
			matches = append(matches, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return matches, nil
}

// LoadRequirements reads a requirements listing: one entry per line,
// surrounding whitespace trimmed, blank lines and comment lines skipped.
func LoadRequirements(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read requirements: %w", err)
	}
	return entries, nil
}

// LoadRequirementsFile reads a requirements listing from disk.
func LoadRequirementsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return LoadRequirements(f)
}
