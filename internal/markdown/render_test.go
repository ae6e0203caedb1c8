// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"
)

func TestGoldmarkRendersLists(t *testing.T) {
	r := NewGoldmark()
	out, err := r.Render("- eggs\n- bread\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "<ul>") || !strings.Contains(out, "<li>eggs</li>") {
		t.Errorf("expected an unordered list, got %q", out)
	}
}

// An ordered list that does not start at 1 cannot interrupt a paragraph, so
// without the inserted blank line the items collapse into prose.
func TestGoldmarkNeedsNormalizedBoundaries(t *testing.T) {
	r := NewGoldmark()

	raw := "steps:\n2. wash\n3. dry\n"
	out, err := r.Render(raw)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(out, "<ol") {
		t.Fatalf("un-normalized input unexpectedly rendered a list: %q", out)
	}

	out, err = r.Render(Normalize("steps:\n2. wash\n3. dry"))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, `<ol start="2">`) || !strings.Contains(out, "<li>wash</li>") {
		t.Errorf("normalized input did not render an ordered list: %q", out)
	}
}

func TestGoldmarkExtensions(t *testing.T) {
	r := NewGoldmark()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tables",
			in:   "| a | b |\n|---|---|\n| 1 | 2 |\n",
			want: "<table>",
		},
		{
			name: "footnotes",
			in:   "here[^1]\n\n[^1]: the note\n",
			want: "#fn:1",
		},
		{
			name: "definition lists",
			in:   "Term\n: definition\n",
			want: "<dt>Term</dt>",
		},
		{
			name: "raw html passes through",
			in:   "keep <b>bold</b> text\n",
			want: "<b>bold</b>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.in)
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}
