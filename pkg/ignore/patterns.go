package ignore

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one compiled exclusion glob together with where it came from.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of the glob.
	Line   string         // Trimmed source line.
	Source string         // "defaults", "flags" or the file the line was read from.
	LineNo int            // 1-based line number within Source.
}

// parsePatternLine compiles one pattern line. It returns nil, nil for blank
// lines and comments. Only a '#' in the first column starts a comment; an
// indented "#foo" is the pattern "#foo".
func parsePatternLine(line string) (*Pattern, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	// A leading "\#" keeps a literal '#'.
	if strings.HasPrefix(trimmed, `\#`) {
		trimmed = trimmed[1:]
	}
	trimmed = strings.ReplaceAll(trimmed, `\`, "/")

	re, err := regexp.Compile(anchorPattern(trimmed))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", trimmed, err)
	}
	return &Pattern{Regexp: re, Line: trimmed}, nil
}

// anchorPattern turns a glob into a regular expression matched against a
// slash-separated relative path. The glob may start at any segment boundary
// and may be followed by further segments. A leading slash anchors it to the
// root; a trailing slash only matches directories, whose candidate paths end
// in a slash.
func anchorPattern(glob string) string {
	prefix := `(?s)^(?:|.*/)`
	if strings.HasPrefix(glob, "/") {
		prefix = `(?s)^`
		glob = strings.TrimLeft(glob, "/")
	}

	if strings.HasSuffix(glob, "/") {
		return prefix + wildcardToRegex(glob) + `.*$`
	}
	return prefix + wildcardToRegex(glob) + `(?:/.*)?$`
}

// wildcardToRegex translates fnmatch wildcards: '*' matches any run of
// characters including '/', '?' matches one character and [seq] / [!seq]
// are character classes. An unterminated '[' is literal.
func wildcardToRegex(glob string) string {
	var b strings.Builder
	n := len(glob)
	for i := 0; i < n; i++ {
		c := glob[i]
		switch c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			j := i + 1
			if j < n && glob[j] == '!' {
				j++
			}
			if j < n && glob[j] == ']' {
				j++
			}
			for j < n && glob[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(characterClass(glob[i+1 : j]))
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}

// characterClass converts the body of a glob [...] class to regex syntax.
func characterClass(body string) string {
	negate := strings.HasPrefix(body, "!")
	if negate {
		body = body[1:]
	}

	body = strings.ReplaceAll(body, `\`, `\\`)
	body = strings.ReplaceAll(body, `[`, `\[`)
	if strings.HasPrefix(body, "]") || strings.HasPrefix(body, "^") {
		body = `\` + body
	}

	if negate {
		return "[^" + body + "]"
	}
	return "[" + body + "]"
}
