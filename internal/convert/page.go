// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package convert

import (
	"fmt"
	"html/template"
	"strings"
)

// pageView feeds the page shell template. TOC and Entries are fragments the
// entry templates already rendered and escaped.
type pageView struct {
	DateRange string
	TOC       template.HTML
	Entries   template.HTML
}

// pageShell is the fixed document frame: Bootstrap and its icon font from
// the CDN, the journal styling, the table-of-contents block, the shared
// photo modal, and the script bundle that drives it. Everything else on the
// page is inert without JavaScript.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Journal entries</title>
  <!-- Bootstrap CSS -->
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css" rel="stylesheet">
  <link href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css" rel="stylesheet">
  <style>
    /* Font settings */
    p {
      font-family: Roboto, sans-serif;
    }

    h1, h2 {
      font-family: 'Roboto Slab', serif;
    }

    /* Indentation and bullets/numbers */
    .card-text ul,
    .card-text ol {
      margin: 0.5rem 0 1rem;
      padding-left: 1.25rem;
    }
    .card-text ul { list-style-type: disc; }
    .card-text ol { list-style-type: decimal; }
    .card-text li { margin-bottom: 0.25rem; }

    /* Hover effects */
    a {
      color: #3d6eb7;
      text-decoration: none;
    }
    .list-group-item a {
      transition: color 0.2s ease;
    }
    .list-group-item a:hover {
      color: #0d6efd;
      font-weight: 500;
    }
  </style>
</head>
<body class="bg-light">
  <div class="container my-5">
    <div class="row">
      <div class="col-lg-8 mx-auto">
        <h1 class="text-center mb-4">Entries {{.DateRange}}</h1>
        <div id="toc" class="mb-4">
          <h2>Table of Contents</h2>
          <ul class="list-group list-group-flush">
{{.TOC}}</ul>
        </div>
{{.Entries}}</div>
    </div>
  </div>
  <div class="modal fade" id="photoModal" tabindex="-1" aria-hidden="true">
    <div class="modal-dialog modal-dialog-centered modal-lg">
      <div class="modal-content bg-dark">
        <div class="modal-header border-0">
          <button type="button" class="btn-close btn-close-white"
            data-bs-dismiss="modal" aria-label="Close"></button>
        </div>
        <div class="modal-body text-center">
          <img id="modalImage" src="" alt="Enlarged photo" class="img-fluid">
        </div>
      </div>
    </div>
  </div>
  <!-- Bootstrap JS (for the photo modal) -->
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>
`

var pageTpl = template.Must(template.New("page").Parse(pageShell))

// renderPage wraps the accumulated fragments in the page shell.
func renderPage(v pageView) (string, error) {
	var b strings.Builder
	if err := pageTpl.Execute(&b, v); err != nil {
		return "", fmt.Errorf("rendering page shell: %w", err)
	}
	return b.String(), nil
}
