// Command raytracer is the CLI entry point: it reads a declarative
// scene document, renders it, and writes a PNG.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seui-engine/raytracing-csg-renderer/internal/logger"
	"github.com/seui-engine/raytracing-csg-renderer/internal/render"
	"github.com/seui-engine/raytracing-csg-renderer/internal/sceneio"
	"github.com/seui-engine/raytracing-csg-renderer/internal/texture"
)

type cliOptions struct {
	noSuffix      bool
	width         int
	height        int
	sceneType     string
	threads       int
	superSampling int
	normal        bool
	depth         bool
}

func main() {
	logger.Init()
	defer logger.Sync()

	opts := &cliOptions{}
	root := &cobra.Command{
		Use:   "raytracer <scene> <output>",
		Short: "Offline CPU ray tracer for CSG scenes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], opts)
		},
		SilenceUsage: true,
	}

	flags := root.Flags()
	flags.BoolVar(&opts.noSuffix, "no-output-png-suffix", false, "suppress automatic .png suffix on the output path")
	flags.IntVar(&opts.width, "width", 1920, "output image width")
	flags.IntVar(&opts.height, "height", 1080, "output image height")
	flags.StringVar(&opts.sceneType, "scene-type", "", "scene format: json|jsonc|yaml|toml|json5|hjson (default: inferred from file suffix)")
	flags.IntVar(&opts.threads, "threads", 0, "worker count (default: CPU count)")
	flags.IntVar(&opts.superSampling, "super-sampling", 1, "supersampling factor per axis")
	flags.BoolVar(&opts.normal, "normal", false, "debug output: encode surface normals instead of shading")
	flags.BoolVar(&opts.depth, "depth", false, "debug output: encode inverse-sqrt depth instead of shading")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(scenePath, outputPath string, opts *cliOptions) error {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		logger.Log.Error("failed to read scene file", zap.String("path", scenePath), zap.Error(err))
		return err
	}

	doc, err := sceneio.Decode(data, scenePath, opts.sceneType)
	if err != nil {
		logger.Log.Error("failed to decode scene", zap.String("path", scenePath), zap.Error(err))
		return err
	}

	textureDir := filepath.Dir(scenePath)
	textures := texture.NewCache(relativeFileLoader{base: textureDir})

	sc, err := sceneio.Build(doc, opts.width, opts.height, textures)
	if err != nil {
		logger.Log.Error("failed to build scene", zap.Error(err))
		return err
	}

	mode := render.ModeShaded
	switch {
	case opts.normal:
		mode = render.ModeNormal
	case opts.depth:
		mode = render.ModeDepth
	}

	img := render.Render(sc, render.Options{
		Width:         opts.width,
		Height:        opts.height,
		SuperSampling: opts.superSampling,
		Workers:       opts.threads,
		Mode:          mode,
	})

	out := outputPath
	if !opts.noSuffix && !strings.HasSuffix(strings.ToLower(out), ".png") {
		out += ".png"
	}

	if err := render.SavePNG(img, out); err != nil {
		logger.Log.Error("failed to save output image", zap.String("path", out), zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("render complete", zap.String("output", out), zap.Int("width", opts.width), zap.Int("height", opts.height))
	return nil
}

// relativeFileLoader resolves texture paths relative to the scene
// file's directory, so scene documents can reference textures by a
// path relative to themselves rather than the process's working
// directory.
type relativeFileLoader struct {
	base string
	texture.FileLoader
}

func (l relativeFileLoader) Load(path string) (texture.Image, error) {
	if filepath.IsAbs(path) {
		return l.FileLoader.Load(path)
	}
	return l.FileLoader.Load(filepath.Join(l.base, path))
}
