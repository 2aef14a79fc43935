// Package align implements the docstring layout primitives: a
// separator-faithful splitter and width-constrained word wrapping with
// hanging indents for directives, numbered lists, and bullets.
package align

import "strings"

// NoLimit disables width-based line breaking when passed as the width
// argument of Align. Indentation rules still apply.
const NoLimit = int(^uint(0) >> 1)

// nameCutset is trimmed from names when normalizing comma-joined parameter
// lists: optional keyword arguments may be written as "[weights]" or
// "(size)" in a prototype.
const nameCutset = " []()|"

// Strip trims spaces and bracket punctuation from both ends of a name.
func Strip(s string) string {
	return strings.Trim(s, nameCutset)
}

// Split splits s on sep. Leading separators stay attached to the first
// token, a separator run yields empty tokens, and every input, including
// the empty string, produces at least one token.
func Split(s string, sep byte) []string {
	var splits []string
	j := firstNotOf(s, sep)
	i := indexFrom(s, sep, j)
	j = 0
	for i >= 0 {
		splits = append(splits, s[j:i])
		j = i + 1
		i = indexFrom(s, sep, j)
	}
	return append(splits, s[j:])
}

// firstNotOf returns the index of the first byte that differs from sep,
// or -1 when there is none.
func firstNotOf(s string, sep byte) int {
	for k := 0; k < len(s); k++ {
		if s[k] != sep {
			return k
		}
	}
	return -1
}

// indexFrom returns the index of the first sep at or after from, or -1.
// A negative from always yields -1.
func indexFrom(s string, sep byte, from int) int {
	if from < 0 {
		return -1
	}
	if k := strings.IndexByte(s[from:], sep); k >= 0 {
		return from + k
	}
	return -1
}

// Align reflows text to the given width, padding every physical line with
// indent spaces. Input lines are logical lines: each one starts on a fresh
// physical line, and a blank input line survives as a near-blank output
// line, so paragraph breaks are preserved. When a logical line wraps, its
// continuation lines pick up extra hanging indent if the line opens with a
// ".." directive, a word starting with a digit, or a "*" bullet, and also
// if the line itself starts with spaces. Every word is followed by a single
// space; the result never ends in a newline.
func Align(text string, indent, width int) string {
	lines := Split(text, '\n')

	var out strings.Builder
	curIndent := indent
	firstLine := true
	for _, line := range lines {
		words := Split(line, ' ')
		length := 0
		newIndent := indent
		if line != "" {
			w := strings.Trim(words[0], " ")
			if w == ".." || (len(w) > 0 && w[0] >= '0' && w[0] <= '9') || w == "*" {
				newIndent += len(w) + 1
			}
			if k := firstNotOf(line, ' '); k > 0 {
				newIndent += k
			}
		}
		for _, word := range words {
			if out.Len() == 0 || length+len(word) >= width || !firstLine {
				if out.Len() > 0 {
					out.WriteByte('\n')
				}
				out.WriteString(strings.Repeat(" ", curIndent))
				length = curIndent
				firstLine = true
			}
			// The hanging indent takes effect from the first wrap of
			// this logical line onwards.
			curIndent = newIndent
			out.WriteString(word)
			out.WriteByte(' ')
			length += len(word) + 1
		}
		curIndent = indent
		firstLine = false
	}
	return out.String()
}
