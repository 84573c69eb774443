// meshtool builds the wave surface wireframe without a window and reports
// on it or exports it.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/engine/wireframe"
	"github.com/Faultbox/wavesurface/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "obj":
		cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - wave surface wireframe utility

Usage:
  meshtool <command> [flags] [args]

Commands:
  info              Print sample counts and vertex statistics
  obj <out.obj>     Write the wireframe as Wavefront OBJ line elements

Flags (shared with the viewer):
  -config <file>    Config file (surface section)
  -nu, -nr          Samples along rings / meridians
  -rlines, -ulines  Number of rings / meridians
  -debug            Debug logging

Examples:
  meshtool info -nu 60 -rlines 10
  meshtool obj -config surface.yaml wave.obj`)
}

// buildMesh loads config with the subcommand's flags and tessellates it.
func buildMesh(args []string) (*wireframe.Mesh, []string) {
	if err := config.ParseArgs(args); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitWithOptions(logger.Options{Level: cfg.Logging.Level, Console: os.Stderr}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := wireframe.Build(cfg.Surface)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sugar.Debugf("built mesh from %+v", cfg.Surface)
	return mesh, config.Args()
}

func cmdInfo(args []string) {
	mesh, _ := buildMesh(args)
	defer logger.Sync()

	p := mesh.Params()
	nu, nr := p.Effective()
	zmin, zmax := zRange(mesh)

	fmt.Printf("Surface:    a=%g n=%g m=%g b=%g phi=%g (wave number %.4f)\n", p.A, p.N, p.M, p.B, p.Phi, p.WaveNumber())
	fmt.Printf("Samples:    Nu=%d Nr=%d (requested %d, %d)\n", nu, nr, p.Nu, p.Nr)
	fmt.Printf("Rings:      %d lines, %d vertices, %d floats\n", p.RLines, mesh.RingCount(), len(mesh.Rings))
	fmt.Printf("Meridians:  %d lines, %d vertices, %d floats\n", p.ULines, mesh.MeridianCount(), len(mesh.Meridians))
	if mesh.RingCount()+mesh.MeridianCount() > 0 {
		fmt.Printf("Z range:    [%.4f, %.4f]\n", zmin, zmax)
	}
}

func cmdOBJ(args []string) {
	mesh, rest := buildMesh(args)
	defer logger.Sync()

	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool obj [flags] <out.obj>")
		os.Exit(1)
	}

	f, err := os.Create(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeOBJ(f, mesh); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", rest[0], err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d vertices)\n", rest[0], mesh.RingCount()+mesh.MeridianCount())
}

// zRange returns the smallest and largest z over both families.
func zRange(mesh *wireframe.Mesh) (float64, float64) {
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for _, data := range [][]float32{mesh.Rings, mesh.Meridians} {
		for i := 2; i < len(data); i += 3 {
			z := float64(data[i])
			zmin = math.Min(zmin, z)
			zmax = math.Max(zmax, z)
		}
	}
	return zmin, zmax
}
