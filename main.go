package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"
)

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (default: $TILEMESH_CONFIG)")
	flag.StringVar(&opts.mapPath, "map", "", "tile map file, levels separated by blank lines (default: built-in debug map)")
	flag.StringVar(&opts.outPath, "out", "", "output .glb or .gltf file (overrides config)")
	flag.IntVar(&opts.workers, "workers", 0, "parallel meshing workers (overrides config)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(ctx, opts, os.Stdout, tty); err != nil {
		fmt.Fprintf(os.Stderr, "tilemesh: %v\n", err)
		stop()
		os.Exit(1)
	}
}
