// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package convert

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/internal/media"
	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

// photoView is one thumbnail in the media grid. URL is typed so the
// template's URL filter accepts the file:// scheme.
type photoView struct {
	URL template.URL
}

// playerView feeds a <source> tag for video and audio players. Src is typed
// like photoView's URL: a drive-letter path such as C:/videos/x.mp4 would
// otherwise be read as carrying a c: scheme and censored.
type playerView struct {
	Src  template.URL
	MIME string
}

// mediaViews groups an entry's resolved media in display order.
type mediaViews struct {
	Photos []photoView
	Videos []playerView
	Audios []playerView
}

// Any reports whether the grid has anything to show.
func (m mediaViews) Any() bool {
	return len(m.Photos)+len(m.Videos)+len(m.Audios) > 0
}

// Count is the number of resolved files across all kinds.
func (m mediaViews) Count() int {
	return len(m.Photos) + len(m.Videos) + len(m.Audios)
}

// entryView feeds the per-entry card template.
type entryView struct {
	Index        int
	DisplayDate  string
	MapsURL      string
	LocationText string
	WeatherLine  string
	Body         template.HTML
	Media        mediaViews
}

// tocView feeds one table-of-contents line.
type tocView struct {
	Index       int
	DisplayDate string
	Preview     string
}

var entryTpl = template.Must(template.New("entry").Parse(`<div class="card mb-4" id="entry{{.Index}}">
  <div class="card-body">
    <p class="text-muted">{{.DisplayDate}}</p>
{{- if .MapsURL}}
    <p class="muted-text"><i class="bi bi-geo-alt-fill text-danger"></i> <a href="{{.MapsURL}}" target="_blank">{{.LocationText}}</a></p>
{{- end}}
    <p class="text-muted">{{.WeatherLine}}</p>
    <div class="card-text">{{.Body}}</div>
{{- if .Media.Any}}
    <div class="row">
{{- range .Media.Photos}}
      <div class="col-md-4">
        <img src="{{.URL}}" class="img-fluid rounded mb-3" alt="Photo"
          data-bs-toggle="modal" data-bs-target="#photoModal"
          onclick="document.getElementById('modalImage').src='{{.URL}}'">
      </div>
{{- end}}
{{- range .Media.Videos}}
      <div class="col-md-6"><video controls class="w-100 mb-3"><source src="{{.Src}}" type="{{.MIME}}">Your browser does not support the video tag.</video></div>
{{- end}}
{{- range .Media.Audios}}
      <div class="col-md-6"><audio controls class="w-100 mb-3"><source src="{{.Src}}" type="{{.MIME}}">Your browser does not support the audio element.</audio></div>
{{- end}}
    </div>
{{- end}}
    <a href="#toc" class="btn btn-link">Back to top</a>
  </div>
</div>
`))

var tocTpl = template.Must(template.New("toc").Parse(`<li class="list-group-item d-flex justify-content-between align-items-center"><a href="#entry{{.Index}}">{{.DisplayDate}} — {{.Preview}}</a></li>
`))

// renderEntry executes the card template for one entry.
func renderEntry(v entryView) (string, error) {
	var b strings.Builder
	if err := entryTpl.Execute(&b, v); err != nil {
		return "", fmt.Errorf("rendering entry %d: %w", v.Index, err)
	}
	return b.String(), nil
}

// renderTOCLine executes the table-of-contents template for one entry.
func renderTOCLine(v tocView) (string, error) {
	var b strings.Builder
	if err := tocTpl.Execute(&b, v); err != nil {
		return "", fmt.Errorf("rendering TOC line %d: %w", v.Index, err)
	}
	return b.String(), nil
}

// buildMediaViews resolves an entry's media references in display order:
// photos, then videos, then audio. References that resolve to nothing are
// dropped silently; skipped counts them.
func buildMediaViews(e types.Entry, r *media.Resolver) (views mediaViews, skipped int) {
	for _, ref := range e.Photos {
		f, ok := r.Photo(ref)
		if !ok {
			skipped++
			continue
		}
		views.Photos = append(views.Photos, photoView{URL: template.URL(fileURL(f.Path))})
	}
	for _, ref := range e.Videos {
		f, ok := r.Video(ref)
		if !ok {
			skipped++
			continue
		}
		views.Videos = append(views.Videos, playerView{Src: template.URL(filepath.ToSlash(f.Path)), MIME: f.MIME})
	}
	for _, ref := range e.Audios {
		f, ok := r.Audio(ref)
		if !ok {
			skipped++
			continue
		}
		views.Audios = append(views.Audios, playerView{Src: template.URL(filepath.ToSlash(f.Path)), MIME: f.MIME})
	}
	return views, skipped
}

// fileURL converts a local path to a file:// URL for photo thumbnails, which
// load from absolute locations so the document works from any directory the
// media tree is visible from.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	// Windows drive paths lack the leading slash the URL form requires.
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "file://" + p
}
