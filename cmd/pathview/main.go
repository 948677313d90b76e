package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	pathedit "github.com/gucio321/pathedit/pkg"
	"github.com/gucio321/pathedit/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	doc, err := pathedit.Parse(data)
	if err != nil {
		glg.Warnf("showing %d commands: %v", doc.Len(), err)
	}

	ebiten.SetWindowSize(800, 600)
	if err := ebiten.RunGame(viewer.NewViewer(doc)); err != nil {
		glg.Fatal(err)
	}
}
