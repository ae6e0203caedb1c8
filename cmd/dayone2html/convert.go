// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/internal/convert"
	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/internal/markdown"
	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <journal.json>",
	Short: "Convert a Day One JSON export to one HTML document",
	Long: `Convert reads a Day One JSON export and writes a single HTML document
containing every entry: rendered Markdown, localized timestamps, weather
and location lines, a linked table of contents, and any photos, videos,
or audio clips found in the media directories.

The document references media in place rather than copying it: photos by
absolute file:// URL, video and audio clips by relative path. It displays
its media only on the machine it was generated on, next to the same
media directories.

Media directories and the output path come from flags, DAYONE2HTML_*
environment variables, or a dayone2html.yaml config file, in that order
of precedence.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("photos-dir", "photos", "directory containing exported photos")
	convertCmd.Flags().String("videos-dir", "videos", "directory containing exported videos")
	convertCmd.Flags().String("audios-dir", "audios", "directory containing exported audio clips")
	convertCmd.Flags().String("output", "journal.html", "path of the generated HTML document")
	convertCmd.Flags().String("report", "", "also write a run report to this path")
	convertCmd.Flags().String("report-format", "yaml", "run report format: yaml or json")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	conv := convert.New(cfg, markdown.NewGoldmark())
	result, err := conv.ConvertFile(args[0], os.Stdout)
	if err != nil {
		return err
	}

	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath == "" {
		return nil
	}
	format, _ := cmd.Flags().GetString("report-format")
	if err := result.WriteReport(reportPath, types.ReportFormat(format)); err != nil {
		return err
	}
	fmt.Printf("Run report written to %s\n", reportPath)
	return nil
}

// convertConfig resolves each setting as: explicitly set flag, then
// environment or config file via viper, then the flag default.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.DefaultConvertConfig()
	cfg.PhotosDir = stringSetting(cmd, "photos-dir", "photos_dir", cfg.PhotosDir)
	cfg.VideosDir = stringSetting(cmd, "videos-dir", "videos_dir", cfg.VideosDir)
	cfg.AudiosDir = stringSetting(cmd, "audios-dir", "audios_dir", cfg.AudiosDir)
	cfg.Output = stringSetting(cmd, "output", "output", cfg.Output)
	return cfg
}

func stringSetting(cmd *cobra.Command, flagName, viperKey, fallback string) string {
	if cmd.Flags().Changed(flagName) {
		v, _ := cmd.Flags().GetString(flagName)
		return v
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return fallback
}
