// ABOUTME: Entry point for the playlist-rebase tool
// ABOUTME: Parses flags, loads configuration, discovers playlists and dispatches to a mode

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"playlist-rebase/config"
	"playlist-rebase/playlist"
)

func main() {
	os.Exit(run())
}

func run() int {
	visual := flag.Bool("visual", false, "run with an interactive terminal UI")
	dryRun := flag.Bool("dry-run", false, "resolve and report without writing any output files")
	probe := flag.Bool("probe", false, "read tags of resolved tracks and warn about unreadable audio")
	watch := flag.Bool("watch", false, "after the batch, keep watching the input tree for new playlists")
	debug := flag.Bool("debug", false, "enable debug logging to playlist-rebase-debug.log")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: playlist-rebase [flags] <config.toml>")
		fmt.Println("Example: playlist-rebase ~/music/playlist-rebase.toml")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	opts := RunOptions{
		ConfigPath: args[0],
		Visual:     *visual,
		DryRun:     *dryRun,
		Probe:      *probe,
		Watch:      *watch,
		DebugLog:   *debug,
	}

	if opts.Visual && opts.Watch {
		log.Printf("-visual and -watch cannot be combined")

		return 1
	}

	if opts.DebugLog {
		if err := SetupDebugLog("playlist-rebase-debug.log"); err != nil {
			log.Printf("Failed to set up debug log: %v", err)

			return 1
		}
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Printf("Configuration error: %v", err)

		return 1
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)

		return 1
	}

	paths, err := playlist.Discover(cfg.InputDir)
	if err != nil {
		log.Printf("Discovery error: %v", err)

		return 1
	}

	if len(paths) == 0 && !opts.Watch {
		log.Printf("No .m3u or .m3u8 files found under %q", cfg.InputDir)

		return 1
	}

	debugf("[MAIN] Discovered %d playlists under %q", len(paths), cfg.InputDir)

	if opts.Visual {
		summary, err := runVisual(cfg, paths, opts)
		if err != nil {
			log.Printf("Visual mode error: %v", err)

			return 1
		}

		return exitCode(summary)
	}

	summary := RunCLI(cfg, paths, opts)

	if opts.Watch {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		fmt.Println("watching for new playlists, press Ctrl+C to stop")

		rep := newConsoleReporter(os.Stdout, os.Stderr, opts.DryRun)

		watched, err := RunWatch(ctx, cfg, rep, BatchOptions{DryRun: opts.DryRun, Probe: opts.Probe})
		if err != nil {
			log.Printf("Watch error: %v", err)

			return 1
		}

		summary.Converted += watched.Converted
		summary.Failed += watched.Failed
	}

	return exitCode(summary)
}

// exitCode maps a batch outcome to the process exit status
func exitCode(summary Summary) int {
	if summary.Failed > 0 {
		return 1
	}

	return 0
}
