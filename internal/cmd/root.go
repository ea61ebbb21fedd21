package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/svetikas/ttbuild/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "ttbuild",
	Short: ui.BrandStyle.Render("ttbuild") + " - Produce optimized plugin archives for TheoTown",
	Long: ui.BrandStyle.Render("ttbuild") + ` is a CLI tool that prepares a plugin directory for distribution.
It strips comments and loose formatting from JSON configuration files, applies the
plugin store attribute policy, and packs everything into a store-ready archive.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Set up clean help template
	rootCmd.SetUsageTemplate(fmt.Sprintf(`%s
  {{.UseLine}}

%s{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

%s
{{.Flags.FlagUsages | trimTrailingWhitespaces}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`,
		ui.SectionStyle.Render("Usage:"),
		ui.SectionStyle.Render("Available Commands:"),
		ui.SectionStyle.Render("Flags:"),
	))

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
}
