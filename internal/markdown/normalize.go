// Copyright Fadilla Wahyudi, 2026. All rights reserved.

// Package markdown prepares raw journal text for HTML conversion: it
// normalizes the list boundaries renderers depend on and wraps the Markdown
// engine behind a small interface so the pipeline can swap it out.
package markdown

import (
	"regexp"
	"strings"
)

// listItemRe matches a list-item line: optional indentation, then an
// unordered marker (-, +, *) or an ordered marker (digits plus "." or ")"),
// followed by whitespace.
var listItemRe = regexp.MustCompile(`^\s*(?:[-+*]|[0-9]+[.)])\s+`)

// Normalize rewrites text so list blocks are unambiguously delimited: a list
// item that directly follows a non-blank, non-list line gets a blank line
// inserted before it, and the result ends with exactly one trailing newline.
// Day One entries often run a list straight on from a paragraph, which
// Markdown renderers refuse to group into a list without the separating
// blank line.
//
// Normalize is total over any input (empty text yields "\n") and idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	out := make([]string, 0, len(lines)+1)
	prevBlank := true
	prevList := false
	for _, line := range lines {
		isList := listItemRe.MatchString(line)
		if isList && !prevBlank && !prevList {
			out = append(out, "")
		}
		out = append(out, line)
		prevBlank = strings.TrimSpace(line) == ""
		prevList = isList
	}

	// Collapse any trailing blank run to the single required newline.
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n") + "\n"
}
