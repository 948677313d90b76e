package main

import (
	"flag"
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	pathedit "github.com/gucio321/pathedit/pkg"
	"github.com/gucio321/pathedit/pkg/config"
	"github.com/gucio321/pathedit/pkg/pathdiff"
	"github.com/gucio321/pathedit/pkg/samples"
	"github.com/gucio321/pathedit/pkg/viewer"
)

func main() {
	f := config.Default()
	var (
		preset     string
		makePreset bool
	)

	flag.StringVar(&f.InputFilePath, "i", f.InputFilePath, "input file path (path data, or svg with -svg)")
	flag.StringVar(&f.Data, "d", f.Data, "path data given inline")
	flag.StringVar(&f.Sample, "sample", f.Sample, "load a built-in sample (see -list)")
	flag.BoolVar(&f.SVG, "svg", f.SVG, "input file is an svg; convert it with inkscape first")
	flag.BoolVar(&f.Simplify, "simplify", f.Simplify, "let inkscape simplify svg paths (changes their geometry)")
	flag.StringVar(&f.OutputFilePath, "o", f.OutputFilePath, "output file path")
	flag.Float64Var(&f.ScaleX, "scale-x", f.ScaleX, "scale factor along X")
	flag.Float64Var(&f.ScaleY, "scale-y", f.ScaleY, "scale factor along Y")
	flag.Float64Var(&f.MoveX, "move-x", f.MoveX, "offset along X")
	flag.Float64Var(&f.MoveY, "move-y", f.MoveY, "offset along Y")
	flag.Float64Var(&f.FitWidth, "fit-width", f.FitWidth, "scale the path to this width (use with -fit-height)")
	flag.Float64Var(&f.FitHeight, "fit-height", f.FitHeight, "scale the path to this height (use with -fit-width)")
	flag.BoolVar(&f.Diff, "diff", f.Diff, "print a diff between loaded and transformed path")
	flag.BoolVar(&f.List, "list", f.List, "list built-in samples")
	flag.BoolVar(&f.View, "v", f.View, "view")
	flag.BoolVar(&f.ShowOrigin, "origin", f.ShowOrigin, "draw origin axes in the viewer")
	flag.Float64Var(&f.StrokeWidth, "stroke", f.StrokeWidth, "stroke width in the viewer")
	flag.BoolVar(&f.Verbose, "verbose", f.Verbose, "print debug logs")
	flag.StringVar(&preset, "preset", "", "preset file path (json, yaml or toml). This will override all other flags")
	flag.BoolVar(&makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if makePreset {
		out, err := f.Marshal()
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if preset != "" {
		var err error
		if f, err = config.Load(preset, f); err != nil {
			glg.Fatalf("Unable to load preset from %s: %v (use valid file or empty to not use presets)", preset, err)
		}
	}

	if err := f.Validate(); err != nil {
		glg.Fatal(err)
	}

	if !f.Verbose {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if f.List {
		listSamples()
		return
	}

	doc := load(f)

	before := doc.Commands()

	// 1.0: transform
	if f.FitWidth != 0 || f.FitHeight != 0 {
		if err := doc.FitTo(f.FitWidth, f.FitHeight); err != nil {
			glg.Fatalf("Cannot fit path to %vx%v: %v", f.FitWidth, f.FitHeight, err)
		}
	}

	if f.ScaleX != 1 || f.ScaleY != 1 {
		doc.ScalePath(f.ScaleX, f.ScaleY)
	}

	if f.MoveX != 0 || f.MoveY != 0 {
		doc.MovePath(f.MoveX, f.MoveY)
	}

	// 2.0: report
	if f.Diff {
		fmt.Print(pathdiff.Colored().Render(before, doc.Commands()))
	}

	if f.OutputFilePath == "" && !f.View && !f.Diff {
		fmt.Println(doc.Data())
	}

	if f.OutputFilePath != "" {
		if err := os.WriteFile(f.OutputFilePath, []byte(doc.Data()+"\n"), 0644); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
		}
	}

	// 3.0: view
	if f.View {
		ebiten.SetWindowSize(800, 600)
		ebiten.SetWindowTitle("pathedit")
		v := viewer.NewViewer(doc).ShowOrigin(f.ShowOrigin).StrokeWidth(float32(f.StrokeWidth))
		if err := ebiten.RunGame(v); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

func listSamples() {
	all, err := samples.All()
	if err != nil {
		glg.Fatalf("Cannot read samples: %v", err)
	}

	for _, s := range all {
		fmt.Printf("%-16s %s\n", s.Name, s.Description)
	}
}

// load picks the first source given: inline data, input file, sample, or the default sample.
func load(f config.Preset) *pathedit.Document {
	var (
		doc *pathedit.Document
		err error
	)

	switch {
	case f.Data != "":
		doc, err = pathedit.Parse([]byte(f.Data))
	case f.InputFilePath != "" && f.SVG:
		var data []byte
		if data, err = convertSVG(f.InputFilePath, f.Simplify); err != nil {
			glg.Fatalf("Cannot convert file %s: %v", f.InputFilePath, err)
		}

		if doc, err = pathedit.ParseSVG(data); doc == nil {
			glg.Fatalf("Cannot parse file %s: %v", f.InputFilePath, err)
		}
	case f.InputFilePath != "":
		var data []byte
		if data, err = os.ReadFile(f.InputFilePath); err != nil {
			glg.Fatalf("Cannot read file %s: %v", f.InputFilePath, err)
		}

		doc, err = pathedit.Parse(data)
	default:
		name := f.Sample
		if name == "" {
			name = samples.DefaultName
		}

		sample, sampleErr := samples.Get(name)
		if sampleErr != nil {
			glg.Fatalf("Cannot load sample: %v", sampleErr)
		}

		doc, err = pathedit.Parse([]byte(sample.Data))
	}

	if err != nil {
		glg.Errorf("Path data is invalid, continuing with %d commands: %v", doc.Len(), err)
	}

	return doc
}

// convertSVG runs inkscape so that every shape becomes a path.
func convertSVG(path string, simplify bool) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, err
	}

	inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := inkscapeProxy.Run(); err != nil {
		return nil, fmt.Errorf("cannot run inkscape: %w", err)
	}

	defer inkscapeProxy.Close()

	glg.Infof("running inkscape pre-processing")
	convertedFile := path + ".pathedit.svg"
	commands := []string{
		fmt.Sprintf("file-open:%s", path),
		fmt.Sprintf("export-filename:%s", convertedFile),
		"export-type:svg",
		"select-all",
		"object-to-path",
	}

	if simplify {
		commands = append(commands, "path-simplify")
	}

	inkscapeProxy.RawCommands(append(commands, "export-do")...)

	glg.Info("inkscape done.")

	return os.ReadFile(convertedFile)
}
