// Command lowpoly reads one or more surface meshes (OBJ or STL), runs the
// low-poly simplification pipeline and writes the result as colored PLY,
// STL and optionally a PNG preview. Each input file is treated as one
// component, so palettes cycle across files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/lowpoly"
	"github.com/soypat/lowpoly/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lowpoly:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lowpoly", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "YAML config file path")
		factor     = fs.Float64("factor", 0, "grid cell size in model units")
		rounding   = fs.Int("rounding", 0, "smoothing iterations")
		color      = fs.String("color", "", `color spec: "none", one token or a space separated palette`)
		cartoon    = fs.Bool("cartoon", false, "flat cartoon preview style")
		outline    = fs.String("outline", "", "preview outline color token")
		name       = fs.String("name", "", "output object name")
		output     = fs.String("o", "", "output mesh path (.ply or .stl)")
		preview    = fs.String("preview", "", "PNG preview path")
	)
	fs.Parse(args)
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "factor":
			cfg.Factor = *factor
		case "rounding":
			cfg.Rounding = *rounding
		case "color":
			cfg.Color = *color
		case "cartoon":
			cfg.CartoonStyle = *cartoon
		case "outline":
			cfg.OutlineColor = *outline
		case "name":
			cfg.Name = *name
		case "o":
			cfg.Output = *output
		case "preview":
			cfg.Preview = *preview
		}
	})
	inputs := fs.Args()
	if len(inputs) == 0 {
		return errors.New("no input mesh given")
	}
	log, err := buildLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Name == "" {
		base := filepath.Base(inputs[0])
		cfg.Name = strings.TrimSuffix(base, filepath.Ext(base)) + "_lowpoly"
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Name + ".ply"
	}

	meshes := make([]lowpoly.Mesh, len(inputs))
	for i, path := range inputs {
		m, err := loadMesh(path, lowpoly.Tag(i))
		if err != nil {
			return err
		}
		log.Info("loaded mesh",
			zap.String("path", path),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("faces", len(m.Faces)),
		)
		meshes[i] = m
	}
	in := render.Merge(meshes...)

	pcfg := lowpoly.Config{
		Factor:       cfg.Factor,
		Rounding:     cfg.Rounding,
		Color:        lowpoly.ParseColorSpec(cfg.Color),
		CartoonStyle: cfg.CartoonStyle,
		OutlineColor: cfg.OutlineColor,
		Name:         cfg.Name,
	}
	out, err := lowpoly.Simplify(in, pcfg)
	if err != nil {
		return err
	}
	log.Info("simplified",
		zap.String("name", cfg.Name),
		zap.Float64("factor", cfg.Factor),
		zap.Int("rounding", cfg.Rounding),
		zap.Int("vertices", len(out.Vertices)),
		zap.Int("faces", len(out.Faces)),
	)
	if len(out.Faces) == 0 {
		log.Warn("simplification produced an empty face list, try a smaller factor")
	}

	if err := saveMesh(cfg.Output, out); err != nil {
		return err
	}
	log.Info("wrote mesh", zap.String("path", cfg.Output))

	if cfg.Preview != "" {
		style := render.PreviewStyle{Cartoon: cfg.CartoonStyle}
		if cfg.CartoonStyle {
			style.Outline, err = lowpoly.ResolveColor(cfg.OutlineColor)
			if err != nil {
				return err
			}
		}
		err = render.SavePreviewPNG(cfg.Preview, out, 1280, 720, render.DefaultView(out), style)
		if err != nil {
			return err
		}
		log.Info("wrote preview", zap.String("path", cfg.Preview))
	}
	return nil
}

func loadMesh(path string, tag lowpoly.Tag) (lowpoly.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return render.LoadOBJ(path, tag)
	case ".stl":
		return render.LoadSTL(path, tag)
	default:
		return lowpoly.Mesh{}, fmt.Errorf("unsupported input format %q", ext)
	}
}

func saveMesh(path string, m lowpoly.Mesh) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ply":
		return render.SavePLY(path, m)
	case ".stl":
		return render.SaveSTL(path, m)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// buildLogger sets up console logging plus optional rotated file output.
func buildLogger(cfg loggingConfig) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), lvl),
	}
	if cfg.LogFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		fileEncCfg := encCfg
		fileEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileEncCfg), zapcore.AddSync(fileWriter), lvl))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}
