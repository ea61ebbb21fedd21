package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/svetikas/ttbuild/internal/ui"
)

var debounceMs int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the archive whenever the plugin changes",
	Long: `Builds the plugin, then watches the input directory and rebuilds the archive
after every change. Stop with Ctrl+C.

Examples:
  ttbuild watch
  ttbuild watch -i my-plugin --debounce 1000`,
	RunE: runWatch,
}

func init() {
	addBuildFlags(watchCmd)
	watchCmd.Flags().IntVar(&debounceMs, "debounce", 500, "Milliseconds to wait after the last change before rebuilding")

	watchCmd.SetUsageTemplate(fmt.Sprintf(`%s
  {{.UseLine}}

%s
{{.Flags.FlagUsages | trimTrailingWhitespaces}}
`,
		ui.SectionStyle.Render("Usage:"),
		ui.SectionStyle.Render("Flags:"),
	))
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, manifest, err := resolveBuild()
	if err != nil {
		return err
	}

	rebuild := func() {
		// The manifest may have changed along with everything else.
		cfg, manifest, err = resolveBuild()
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		result, err := runBuildOnce(cfg, manifest)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		ui.PrintSuccess("Archive created at: %s", result.ArchivePath)
	}

	ui.PrintInfo("Processing plugin: %s (version %s)", manifest.Title(), manifest.Version())
	rebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := addWatchRecursive(watcher, cfg.InputDir); err != nil {
		return err
	}

	ui.PrintInfo("Watching %s for changes (debounce %dms), press Ctrl+C to stop", cfg.InputDir, debounceMs)

	debounce := time.Duration(debounceMs) * time.Millisecond
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
		timerC = timer.C
	}

	for {
		select {
		case <-stop:
			fmt.Println()
			ui.PrintInfo("Stopped watching.")
			return nil
		case <-timerC:
			timerC = nil
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ui.PrintWarning("watcher error: %v", err)
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories need their own watch.
			if evt.Op&fsnotify.Create != 0 {
				if fi, statErr := os.Stat(evt.Name); statErr == nil && fi.IsDir() {
					if addErr := addWatchRecursive(watcher, evt.Name); addErr != nil {
						ui.PrintWarning("could not watch %s: %v", evt.Name, addErr)
					}
				}
			}
			if shouldTriggerRebuild(cfg.OutputDir, evt) {
				resetTimer()
			}
		}
	}
}

// shouldTriggerRebuild filters out events that must not cause a rebuild:
// hidden items and anything inside the output directory, which would
// otherwise loop forever on our own archive.
func shouldTriggerRebuild(outputDir string, evt fsnotify.Event) bool {
	if strings.TrimSpace(evt.Name) == "" {
		return false
	}
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(evt.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
		return false
	}
	if out, err := filepath.Abs(outputDir); err == nil {
		if name, err := filepath.Abs(evt.Name); err == nil {
			if name == out || strings.HasPrefix(name, out+string(filepath.Separator)) {
				return false
			}
		}
	}
	return true
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if path != root && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_")) {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}
