package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/svetikas/ttbuild/internal/builder"
	"github.com/svetikas/ttbuild/internal/models"
	"github.com/svetikas/ttbuild/internal/ui"
)

var (
	inputDir     string
	outputDir    string
	outputFormat string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the plugin archive",
	Long: `Normalizes the plugin's JSON files and packs the directory into an archive
named "{title} {version}.zip" from the plugin.manifest.

Examples:
  ttbuild build                    # Build the plugin in the current directory
  ttbuild build -i my-plugin -o dist`,
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)

	buildCmd.SetUsageTemplate(fmt.Sprintf(`%s
  {{.UseLine}}

%s
{{.Flags.FlagUsages | trimTrailingWhitespaces}}
`,
		ui.SectionStyle.Render("Usage:"),
		ui.SectionStyle.Render("Flags:"),
	))
}

// addBuildFlags registers the shared build flags; watch reuses them.
func addBuildFlags(c *cobra.Command) {
	c.Flags().StringVarP(&inputDir, "input-directory", "i", ".", "Directory of the plugin to process, must contain a plugin.manifest")
	c.Flags().StringVarP(&outputDir, "output-directory", "o", "", "Directory where the archive is written (default \"output\")")
	c.Flags().StringVarP(&outputFormat, "output-format", "f", "", "Archive format, one of: store (default \"store\")")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, manifest, err := resolveBuild()
	if err != nil {
		return err
	}

	ui.PrintInfo("Processing plugin: %s (version %s)", manifest.Title(), manifest.Version())

	result, err := runBuildOnce(cfg, manifest)
	if err != nil {
		return err
	}

	for _, s := range result.Skipped {
		ui.PrintDetail("skipped %s (%s)", s.Rel, s.Reason)
	}
	ui.PrintInfo("Packed %d files, %d normalized", len(result.Packed), len(result.Normalized))
	ui.PrintSuccess("Archive created at: %s", result.ArchivePath)
	return nil
}

// runBuildOnce runs one build with a progress bar. watch calls this on
// every rebuild.
func runBuildOnce(cfg builder.Config, manifest *models.Manifest) (*builder.Result, error) {
	var progress *ui.Progress
	result, err := builder.Build(cfg, manifest, func(done, total int, rel string) {
		if progress == nil {
			progress = ui.NewProgress(total)
		}
		progress.Update(done, rel)
	})
	if progress != nil {
		progress.Finish()
	}
	return result, err
}

// resolveBuild merges flags with the optional ttbuild.yml and loads the
// manifest. Flags win over the project file, which wins over defaults.
func resolveBuild() (builder.Config, *models.Manifest, error) {
	if _, err := os.Stat(inputDir); err != nil {
		return builder.Config{}, nil, fmt.Errorf("directory %s does not exist", inputDir)
	}

	manifestPath := filepath.Join(inputDir, models.ManifestFileName)
	manifest, err := models.LoadManifestFromFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return builder.Config{}, nil, fmt.Errorf("manifest file %s does not exist", manifestPath)
		}
		return builder.Config{}, nil, fmt.Errorf("could not read %s: %w", manifestPath, err)
	}

	project, err := models.LoadProjectFromFile(filepath.Join(inputDir, models.ProjectFileName))
	if err != nil {
		return builder.Config{}, nil, fmt.Errorf("could not read %s: %w", models.ProjectFileName, err)
	}

	out := outputDir
	if out == "" {
		out = project.Output.Directory
	}
	formatName := outputFormat
	if formatName == "" {
		formatName = project.Output.Format
	}
	format, err := builder.ParseFormat(formatName)
	if err != nil {
		return builder.Config{}, nil, err
	}

	cfg := builder.Config{
		InputDir:  inputDir,
		OutputDir: out,
		Format:    format,
		Walk:      project.WalkerOptions(),
	}
	return cfg, manifest, nil
}
