// Command smallmatgen renders the fixed-shape matrix types listed in a YAML
// instantiation file.
//
// Usage:
//
//	smallmatgen -config smallmat.yaml -out zz_generated.go [-v]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/smallmat/gen"
)

func main() {
	var (
		config  = flag.String("config", "smallmat.yaml", "YAML instantiation list")
		out     = flag.String("out", "", "Output file (stdout when empty)")
		verbose = flag.Bool("v", false, "Log every planned type")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("smallmatgen: ")

	cfg, err := gen.LoadConfig(*config)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	plan, err := gen.Build(cfg)
	if err != nil {
		log.Fatalf("planning: %v", err)
	}
	if *verbose {
		for _, t := range plan.Types {
			log.Printf("%s (transpose %s)", t.Name, t.Transpose)
		}
	}
	src, err := gen.Render(plan)
	if err != nil {
		log.Fatalf("rendering: %v", err)
	}

	if *out == "" {
		if _, err = os.Stdout.Write(src); err != nil {
			log.Fatalf("writing stdout: %v", err)
		}
		return
	}
	if err = os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "wrote %d types to %s\n", len(plan.Types), *out)
	}
}
