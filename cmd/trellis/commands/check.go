package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/trellis"
	"github.com/phanxgames/trellis/config"
)

// Check implements the 'trellis check' command.
func Check(args []string) error {
	return runCheck(args, os.Stdout, flag.ExitOnError)
}

func runCheck(args []string, out io.Writer, handling flag.ErrorHandling) error {
	fs := flag.NewFlagSet("check", handling)
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("check needs at least one layout file")
	}

	failed := 0
	for _, path := range fs.Args() {
		root, err := config.LoadFile(path)
		if err != nil {
			fmt.Fprintf(out, "✗ %v\n", err)
			failed++
			continue
		}
		count := 0
		root.Walk(func(*trellis.Node) bool {
			count++
			return true
		})
		fmt.Fprintf(out, "✓ %s (%d nodes)\n", path, count)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, fs.NArg())
	}
	return nil
}
