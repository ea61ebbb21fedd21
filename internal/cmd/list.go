package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/svetikas/ttbuild/internal/models"
	"github.com/svetikas/ttbuild/internal/ui"
	"github.com/svetikas/ttbuild/internal/walker"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files a build would pack",
	Long: `Shows every file under the plugin directory and what a build would do with
it: normalize it, copy it as-is, or skip it.

Examples:
  ttbuild list
  ttbuild list -i my-plugin`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&inputDir, "input-directory", "i", ".", "Directory of the plugin to list")

	listCmd.SetUsageTemplate(fmt.Sprintf(`%s
  {{.UseLine}}

%s
{{.Flags.FlagUsages | trimTrailingWhitespaces}}
`,
		ui.SectionStyle.Render("Usage:"),
		ui.SectionStyle.Render("Flags:"),
	))
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, manifest, err := resolveBuild()
	if err != nil {
		return err
	}

	entries, skipped, err := walker.Walk(cfg.InputDir, cfg.Walk)
	if err != nil {
		return err
	}

	ui.PrintHeader("Build Plan: %s %s", manifest.Title(), manifest.Version())

	table := ui.NewTable("FILE", "ACTION", "DETAILS")
	packed := 0
	normalized := 0
	excluded := len(skipped)

	thumb, hasThumb := manifest.Thumbnail()
	for _, entry := range entries {
		switch {
		case hasThumb && entry.Rel == thumb:
			table.AddRow(entry.Rel, ui.CreateStatusBadge("SKIPPED"), "thumbnail not needed in store format")
			excluded++
		case entry.Rel == models.ManifestFileName:
			table.AddRow(entry.Rel, ui.CreateStatusBadge("NORMALIZED"), "manifest rewritten")
			packed++
			normalized++
		case strings.HasSuffix(entry.Rel, ".json"):
			table.AddRow(entry.Rel, ui.CreateStatusBadge("NORMALIZED"), "plugin policy applied")
			packed++
			normalized++
		default:
			table.AddRow(entry.Rel, ui.CreateStatusBadge("PACKED"), "copied as-is")
			packed++
		}
	}
	for _, s := range skipped {
		table.AddRow(s.Rel, ui.CreateStatusBadge("SKIPPED"), s.Reason)
	}

	fmt.Println(table.Render())
	fmt.Println()

	ui.PrintInfo("Total files: %d packed (%d normalized), %d skipped", packed, normalized, excluded)
	return nil
}
