package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/svetikas/ttbuild/internal/models"
	"github.com/svetikas/ttbuild/internal/ui"
)

var interactive bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a plugin.manifest and ttbuild.yml",
	Long: `Creates a plugin.manifest template and a ttbuild.yml build configuration in
the current directory.

Examples:
  ttbuild init                    # Create with default settings
  ttbuild init -i                 # Create in interactive mode`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode to configure the plugin")

	initCmd.SetUsageTemplate(fmt.Sprintf(`%s
  {{.UseLine}}

%s
{{.Flags.FlagUsages | trimTrailingWhitespaces}}
`,
		ui.SectionStyle.Render("Usage:"),
		ui.SectionStyle.Render("Flags:"),
	))
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(models.ManifestFileName); err == nil {
		ui.PrintWarning("File %s already exists. Overwrite? (y/N): ", models.ManifestFileName)

		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			ui.PrintInfo("Operation cancelled.")
			return nil
		}
	}

	title := "My Plugin"
	version := "1.0"
	author := "unknown"

	// Interactive mode
	if interactive {
		reader := bufio.NewReader(os.Stdin)

		ui.PrintHeader("Interactive Setup")

		fmt.Printf("%s", ui.InfoStyle.Render("Plugin Title: "))
		if input, _ := reader.ReadString('\n'); strings.TrimSpace(input) != "" {
			title = strings.TrimSpace(input)
		}

		fmt.Printf("%s", ui.InfoStyle.Render("Plugin Version: "))
		if input, _ := reader.ReadString('\n'); strings.TrimSpace(input) != "" {
			version = strings.TrimSpace(input)
		}

		fmt.Printf("%s", ui.InfoStyle.Render("Author: "))
		if input, _ := reader.ReadString('\n'); strings.TrimSpace(input) != "" {
			author = strings.TrimSpace(input)
		}
	}

	// The template carries comments on purpose: the build strips them.
	manifest := fmt.Sprintf(`{
	// Shown in the plugin store
	"title": "%s",
	"version": "%s",
	"author": "%s",
	// Preview image, removed again for store builds
	"thumbnail": "preview.png"
}
`, title, version, author)

	if err := os.WriteFile(models.ManifestFileName, []byte(manifest), 0644); err != nil {
		return fmt.Errorf("error creating %s: %w", models.ManifestFileName, err)
	}

	if err := models.DefaultProject().SaveToFile(models.ProjectFileName); err != nil {
		return fmt.Errorf("error creating %s: %w", models.ProjectFileName, err)
	}

	ui.PrintSuccess("Files %s and %s created successfully!", models.ManifestFileName, models.ProjectFileName)
	ui.PrintInfo("Add your plugin files and then run 'ttbuild build'")

	return nil
}
