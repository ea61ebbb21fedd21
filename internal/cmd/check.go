package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/svetikas/ttbuild/internal/models"
	"github.com/svetikas/ttbuild/internal/pipeline"
	"github.com/svetikas/ttbuild/internal/rewrite"
	"github.com/svetikas/ttbuild/internal/ui"
	"github.com/svetikas/ttbuild/internal/walker"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every JSON file normalizes cleanly",
	Long: `Runs the normalization pipeline over every JSON file that would be packed,
without writing anything. Reports per-file results and fails if any file
cannot be normalized or carries a deprecated attribute.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&inputDir, "input-directory", "i", ".", "Directory of the plugin to check")

	checkCmd.SetUsageTemplate(fmt.Sprintf(`%s
  {{.UseLine}}

%s
{{.Flags.FlagUsages | trimTrailingWhitespaces}}
`,
		ui.SectionStyle.Render("Usage:"),
		ui.SectionStyle.Render("Flags:"),
	))
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveBuild()
	if err != nil {
		return err
	}

	entries, _, err := walker.Walk(cfg.InputDir, cfg.Walk)
	if err != nil {
		return err
	}

	ui.PrintHeader("Normalization Report")

	spinner := ui.NewSpinner("Checking JSON files...")
	spinner.Start()

	table := ui.NewTable("FILE", "STATUS", "DETAILS")
	okCount := 0
	failCount := 0
	checked := 0

	for _, entry := range entries {
		isManifest := entry.Rel == models.ManifestFileName
		if !isManifest && !strings.HasSuffix(entry.Rel, ".json") {
			continue
		}
		checked++

		data, err := os.ReadFile(entry.Path)
		if err != nil {
			table.AddRow(entry.Rel, ui.CreateStatusBadge("ERROR"), err.Error())
			failCount++
			continue
		}

		if isManifest {
			_, err = models.ParseManifest(string(data))
		} else {
			_, err = pipeline.Normalize(string(data), rewrite.PluginPolicy())
		}
		if err != nil {
			table.AddRow(entry.Rel, ui.CreateStatusBadge("ERROR"), err.Error())
			failCount++
			continue
		}

		table.AddRow(entry.Rel, ui.CreateStatusBadge("OK"), "normalizes cleanly")
		okCount++
	}

	spinner.Stop()

	fmt.Println(table.Render())
	fmt.Println()

	fmt.Printf("%s\n\n", ui.CountBar(okCount, checked, 15))

	if failCount > 0 {
		ui.PrintError("Check failed: %d files cannot be normalized.", failCount)
		return fmt.Errorf("check failed")
	}

	ui.PrintSuccess("Check successful: all %d JSON files normalize cleanly.", checked)
	return nil
}
