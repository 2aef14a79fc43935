// Package coverage cross-checks the names declared in prototypes against
// the names that were documented, and renders ".. todo::" advisories for
// the gaps. Advisories never fail a build; they surface in the generated
// pages instead.
package coverage

import (
	"sort"
	"strings"

	"github.com/mhoffma/bob.extension/internal/align"
)

// placeholder is the conventional name for "no value". It is declared by
// prototypes without a return value and never reported as undocumented.
const placeholder = "None"

// Check compares declared name groups against documented name groups and
// returns advisory text for names missing on either side, or "" when both
// sides agree. Each group is a comma-joined list; names are normalized by
// trimming spaces and bracket punctuation. A name documented twice counts
// as unused the second time. Advisories list names sorted.
func Check(declared, documented []string, kind string) string {
	undoc := make(map[string]struct{})
	for _, group := range declared {
		for _, name := range align.Split(group, ',') {
			undoc[align.Strip(name)] = struct{}{}
		}
	}
	unused := make(map[string]struct{})
	for _, group := range documented {
		for _, name := range align.Split(group, ',') {
			stripped := align.Strip(name)
			if _, ok := undoc[stripped]; ok {
				delete(undoc, stripped)
			} else {
				unused[stripped] = struct{}{}
			}
		}
	}

	var out strings.Builder
	if len(undoc) > 0 {
		if all := joinNames(undoc, true); all != "" {
			out.WriteString("\n" + align.Align(".. todo:: The "+kind+"(s) '"+all+"' are used, but not documented.", 0, align.NoLimit) + "\n")
		}
	}
	if len(unused) > 0 {
		all := joinNames(unused, false)
		out.WriteString("\n" + align.Align(".. todo:: The "+kind+"(s) '"+all+"' are documented, but nowhere used.", 0, align.NoLimit) + "\n")
	}
	return out.String()
}

// joinNames renders a name set as a sorted, comma-separated list. Empty
// names never contribute; the placeholder is dropped when skipPlaceholder
// is set.
func joinNames(names map[string]struct{}, skipPlaceholder bool) string {
	list := make([]string, 0, len(names))
	for name := range names {
		if name == "" || (skipPlaceholder && name == placeholder) {
			continue
		}
		list = append(list, name)
	}
	sort.Strings(list)
	return strings.Join(list, ", ")
}
