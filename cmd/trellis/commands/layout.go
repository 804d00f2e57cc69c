// Package commands implements the trellis CLI subcommands.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/trellis"
	"github.com/phanxgames/trellis/config"
	"github.com/phanxgames/trellis/snapshot"
)

// Layout implements the 'trellis layout' command.
func Layout(args []string) error {
	return runLayout(args, os.Stdout, flag.ExitOnError)
}

func runLayout(args []string, out io.Writer, handling flag.ErrorHandling) error {
	fs := flag.NewFlagSet("layout", handling)
	fs.SetOutput(out)
	width := fs.Float64("width", 0, "Viewport width (overrides the document)")
	height := fs.Float64("height", 0, "Viewport height (overrides the document)")
	pngPath := fs.String("png", "", "Write a PNG snapshot to this path")
	scale := fs.Float64("scale", 1, "Snapshot scale factor")
	labels := fs.Bool("labels", false, "Draw node names in the snapshot")
	verbose := fs.Bool("v", false, "Print layout timing and counters")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("layout needs exactly one layout file")
	}

	doc, err := config.ParseFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if *width > 0 {
		doc.Viewport.Width = *width
	}
	if *height > 0 {
		doc.Viewport.Height = *height
	}
	if doc.Viewport.Width <= 0 || doc.Viewport.Height <= 0 {
		return fmt.Errorf("viewport is %gx%g; set [viewport] or pass -width and -height",
			doc.Viewport.Width, doc.Viewport.Height)
	}

	tree, err := doc.Tree()
	if err != nil {
		return err
	}
	tree.SetDebugMode(*verbose)
	tree.Update()

	if err := printTree(out, tree.Root()); err != nil {
		return err
	}

	if *pngPath != "" {
		opts := snapshot.Options{Scale: *scale, Labels: *labels, Margins: true}
		if err := snapshot.SavePNG(*pngPath, tree, opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", *pngPath)
	}
	return nil
}

type stringWriter struct {
	w   io.Writer
	err error
}

func (s *stringWriter) WriteString(str string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int
	n, s.err = io.WriteString(s.w, str)
	return n, s.err
}

func printTree(out io.Writer, root *trellis.Node) error {
	sw := &stringWriter{w: out}
	root.Dump(sw)
	if sw.err != nil {
		return fmt.Errorf("failed to write layout: %w", sw.err)
	}
	return nil
}
