// Command demo runs a small editor-style screen with a flexbar status bar
// on the bottom row. The bar shows the current mode, a filename, and a
// ticking clock; its layout and colors come from a YAML config file that
// is live-reloaded on change.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/holt/flexbar/internal/config"
)

func main() {
	configPath := flag.String("config", "flexbar.yaml", "path to the status bar config file")
	flag.Parse()

	filename := "demo.txt"
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	bar, err := cfg.Bar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(bar, filename), tea.WithAltScreen())
	go watchConfig(p, *configPath)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

// watchConfig rebuilds the bar when the config file changes and pushes the
// result into the running program.
func watchConfig(p *tea.Program, path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.Send(watchErrMsg{err: err})
		return
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors replace files on
	// save, which drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		p.Send(watchErrMsg{err: err})
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := config.Load(path)
			if err != nil {
				p.Send(watchErrMsg{err: err})
				continue
			}
			bar, err := cfg.Bar()
			if err != nil {
				p.Send(watchErrMsg{err: err})
				continue
			}
			p.Send(configReloadedMsg{bar: bar})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.Send(watchErrMsg{err: err})
		}
	}
}
