package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/locationtag/spec-tools/pkg/console"
	"github.com/locationtag/spec-tools/pkg/verifier"
)

// debounceDelay batches editor write bursts into one verification run.
const debounceDelay = 300 * time.Millisecond

// WatchAndVerify runs verification once, then re-runs it whenever a .json
// or .md file under the watched paths changes. It returns after SIGINT or
// SIGTERM; per-run pass/fail is printed, not returned, since a watch
// session has no single outcome.
func WatchAndVerify(paths []string, allowMissingSchema, verbose bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	root := treeRoot(cwd)

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = cfg.Paths
	}
	if len(paths) == 0 {
		paths = defaultPaths(root)
	}

	opts := verifier.Options{AllowMissingSchema: allowMissingSchema || cfg.AllowMissingSchema}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watchRecursive(watcher, path); err != nil {
			return err
		}
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching %s for schema changes...", strings.Join(paths, ", "))))
	if verbose {
		fmt.Println(console.FormatVerboseMessage("Press Ctrl+C to stop watching."))
	}

	runOnce := func() {
		result, err := runVerification(paths, root, opts, verbose)
		if err != nil {
			fmt.Println(console.FormatWarningMessage(fmt.Sprintf("verification run failed: %v", err)))
			return
		}
		printResult(result)
	}
	runOnce()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSchemaFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				// New directories must be added to the watch set.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchRecursive(watcher, event.Name)
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(console.FormatWarningMessage(fmt.Sprintf("watch error: %v", err)))
		case <-sigChan:
			fmt.Println(console.FormatInfoMessage("Stopping watch mode."))
			return nil
		}
	}
}

// watchRecursive adds path and, for directories, every subdirectory to the
// watcher. fsnotify does not watch trees by itself.
func watchRecursive(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}

// isSchemaFile reports whether a change to name can affect verification.
// Directories pass so create events can extend the watch set.
func isSchemaFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".md", "":
		return true
	default:
		return false
	}
}
