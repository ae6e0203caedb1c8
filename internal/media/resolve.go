// Copyright Fadilla Wahyudi, 2026. All rights reserved.

// Package media locates exported journal attachments on disk. A logical
// reference carries a filename stem (content hash or identifier, no
// extension); resolution probes an ordered list of candidate extensions per
// kind and keeps the first file that exists.
package media

import (
	"os"
	"path/filepath"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

// candidate pairs an extension with the MIME type the player tag needs.
// Photos carry no MIME; <img> does not take one.
type candidate struct {
	ext  string
	mime string
}

// Candidate order is significant: the first existing file wins.
var (
	photoCandidates = []candidate{
		{ext: ".jpg"},
		{ext: ".jpeg"},
		{ext: ".png"},
	}

	// .mov maps to video/mp4 so QuickTime clips play in browsers that
	// reject video/quicktime.
	videoCandidates = []candidate{
		{ext: ".mp4", mime: "video/mp4"},
		{ext: ".mov", mime: "video/mp4"},
		{ext: ".webm", mime: "video/webm"},
	}

	audioCandidates = []candidate{
		{ext: ".m4a", mime: "audio/mp4"},
	}
)

// File is a resolved attachment on disk.
type File struct {
	// Path is the configured directory joined with stem and extension, as
	// the output document will reference it.
	Path string

	// MIME is the source type for video and audio players; empty for
	// photos.
	MIME string
}

// Resolver probes the configured media directories.
type Resolver struct {
	PhotosDir string
	VideosDir string
	AudiosDir string
}

// NewResolver returns a resolver over the directories named in cfg.
func NewResolver(cfg types.ConvertConfig) *Resolver {
	return &Resolver{
		PhotosDir: cfg.PhotosDir,
		VideosDir: cfg.VideosDir,
		AudiosDir: cfg.AudiosDir,
	}
}

// Photo resolves a photo reference. The boolean is false when the reference
// has no usable stem or no candidate file exists; such a reference
// contributes nothing to the output.
func (r *Resolver) Photo(ref types.Media) (File, bool) {
	return resolve(r.PhotosDir, ref, photoCandidates)
}

// Video resolves a video reference.
func (r *Resolver) Video(ref types.Media) (File, bool) {
	return resolve(r.VideosDir, ref, videoCandidates)
}

// Audio resolves an audio reference.
func (r *Resolver) Audio(ref types.Media) (File, bool) {
	return resolve(r.AudiosDir, ref, audioCandidates)
}

// resolve tries each candidate extension in order against dir/stem. Only the
// preferred stem is probed: a reference whose md5 names no file is not
// retried under its identifier.
func resolve(dir string, ref types.Media, candidates []candidate) (File, bool) {
	stem := ref.Filename()
	if stem == "" {
		return File{}, false
	}
	for _, c := range candidates {
		path := filepath.Join(dir, stem+c.ext)
		if _, err := os.Stat(path); err == nil {
			return File{Path: path, MIME: c.mime}, true
		}
	}
	return File{}, false
}
