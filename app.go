package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/memmaker/tilemesh/engine/config"
	"github.com/memmaker/tilemesh/engine/export"
	"github.com/memmaker/tilemesh/engine/tile"
	"github.com/memmaker/tilemesh/engine/util"
	"github.com/memmaker/tilemesh/engine/voxel"
	"github.com/pkg/errors"
)

type options struct {
	configPath string
	mapPath    string
	outPath    string
	workers    int
}

type buildSummary struct {
	Walls     int
	Chunks    int
	Voxels    int
	Triangles int
	Output    string
}

func loadArea(mapPath string) (*tile.Area, error) {
	if mapPath == "" {
		util.LogTilesInfo("[Map] No map given, using the debug area")
		return tile.DebugArea(), nil
	}
	return tile.LoadFile(mapPath)
}

func buildWorld(ctx context.Context, area *tile.Area, cfg *config.Config) (*voxel.World, error) {
	if cfg.Build.Workers <= 1 {
		return voxel.NewWorldFromArea(area, cfg.World)
	}
	world, err := voxel.NewWorld(cfg.World)
	if err != nil {
		return nil, err
	}
	world.Rasterize(area)
	if err = world.GenerateAllMeshesParallel(ctx, cfg.Build.Workers); err != nil {
		return nil, err
	}
	return world, nil
}

func run(ctx context.Context, opts options, out io.Writer, tty bool) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.outPath != "" {
		cfg.Export.Path = opts.outPath
	}
	if opts.workers > 0 {
		cfg.Build.Workers = opts.workers
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid options")
	}
	if err = cfg.ApplyLogging(); err != nil {
		return err
	}

	area, err := loadArea(opts.mapPath)
	if err != nil {
		return err
	}
	world, err := buildWorld(ctx, area, cfg)
	if err != nil {
		return err
	}

	summary := buildSummary{
		Walls:     area.WallCount(),
		Chunks:    world.ChunkCount(),
		Voxels:    world.GroundCount(),
		Triangles: world.TriangleCount(),
	}
	if cfg.Export.Path != "" {
		if _, err = export.WriteWorld(world, cfg.Export.Path); err != nil {
			return err
		}
		summary.Output = cfg.Export.Path
	}
	printSummary(out, summary, tty)
	return nil
}

func printSummary(out io.Writer, s buildSummary, tty bool) {
	if !tty {
		fmt.Fprintf(out, "walls=%d chunks=%d voxels=%d triangles=%d output=%s\n", s.Walls, s.Chunks, s.Voxels, s.Triangles, s.Output)
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Walls\t%d\n", s.Walls)
	fmt.Fprintf(w, "Chunks\t%d\n", s.Chunks)
	fmt.Fprintf(w, "Ground voxels\t%d\n", s.Voxels)
	fmt.Fprintf(w, "Triangles\t%d\n", s.Triangles)
	if s.Output != "" {
		fmt.Fprintf(w, "Output\t%s\n", s.Output)
	}
	w.Flush()
}
