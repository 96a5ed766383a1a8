// Command pcskeleton is the thin CLI collaborator SPEC_FULL.md §2 names: it
// wires datasource → engine.Run → resultio, the boundary spec.md §1
// explicitly excludes from the core ("Parsing the input CSV ... logging,
// CLI, and result serialization are treated as collaborators").
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kkrpk/lock-free-pc-MDF/datasource"
	"github.com/kkrpk/lock-free-pc-MDF/engine"
	"github.com/kkrpk/lock-free-pc-MDF/resultio"
)

func main() {
	var (
		path      = flag.String("data", "", "path to a rectangular numeric CSV")
		alpha     = flag.Float64("alpha", 0.05, "significance threshold, in (0,1)")
		workers   = flag.Int("workers", 4, "worker thread count")
		hasHeader = flag.Bool("header", false, "skip the first CSV row")
		transpose = flag.Bool("samples-by-rows", false, "rows are samples, columns are variables (default: rows are variables)")
		outFormat = flag.String("format", "json", "output format: json or yaml")
		out       = flag.String("out", "", "output path (default: stdout)")
		progress  = flag.Bool("progress", false, "log level-by-level progress to stderr")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "pcskeleton: -data is required")
		os.Exit(2)
	}

	orientation := datasource.VariablesBySamples
	if *transpose {
		orientation = datasource.SamplesByVariables
	}
	matrix, err := datasource.LoadCSV(*path, datasource.Options{
		Orientation: orientation,
		HasHeader:   *hasHeader,
	})
	if err != nil {
		log.Fatalf("pcskeleton: load: %v", err)
	}

	var logger engine.Logger
	if *progress {
		logger = stderrLogger{}
	}
	e, err := engine.New(engine.Config{Alpha: *alpha, Workers: *workers, Logger: logger})
	if err != nil {
		log.Fatalf("pcskeleton: configure: %v", err)
	}

	result, err := e.Run(matrix.ToRows())
	if err != nil {
		log.Fatalf("pcskeleton: run: %v", err)
	}

	doc, err := resultio.BuildDocument(result.Graph, result.SepSet.Get)
	if err != nil {
		log.Fatalf("pcskeleton: build result: %v", err)
	}

	format := resultio.JSON
	if *outFormat == "yaml" {
		format = resultio.YAML
	} else if *outFormat != "json" {
		log.Fatalf("pcskeleton: unknown -format %q", *outFormat)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("pcskeleton: create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := resultio.WriteDocument(w, doc, format); err != nil {
		log.Fatalf("pcskeleton: write: %v", err)
	}

	log.Printf("pcskeleton: %d levels, %d tests, %d edges deleted", result.Levels, result.Totals.TotalTests(), result.Totals.TotalEdgesDeleted())
}

type stderrLogger struct{}

func (stderrLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
