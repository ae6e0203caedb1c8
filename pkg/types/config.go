package types

// ReportFormat selects the run-report output format.
type ReportFormat string

const (
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// ConvertConfig holds the settings for one conversion run. The directories
// are searched by filename stem plus candidate extension; the output file is
// overwritten on success.
type ConvertConfig struct {
	// PhotosDir is the directory containing exported photos (default "photos").
	PhotosDir string `json:"photos_dir" yaml:"photos_dir"`

	// VideosDir is the directory containing exported videos (default "videos").
	VideosDir string `json:"videos_dir" yaml:"videos_dir"`

	// AudiosDir is the directory containing exported audio clips (default "audios").
	AudiosDir string `json:"audios_dir" yaml:"audios_dir"`

	// Output is the path of the generated HTML document (default "journal.html").
	Output string `json:"output" yaml:"output"`
}

// DefaultConvertConfig returns the conversion defaults: media directories
// next to the working directory and journal.html as the output file.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		PhotosDir: "photos",
		VideosDir: "videos",
		AudiosDir: "audios",
		Output:    "journal.html",
	}
}
