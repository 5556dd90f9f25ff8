// Command zplctl is a small demo CLI exercising this module's JSON5/CSV
// conversion and job scheduler end to end. It is a thin consumer: no
// business logic lives here, only subcommand dispatch and wiring.
package main

import (
	"fmt"
	"os"

	"github.com/Ed94/zpl-sub000/zlog"
)

type subcommand struct {
	name string
	run  func(args []string) error
}

var subcommands = []subcommand{
	{"convert", runConvert},
	{"bench-jobs", runBenchJobs},
}

func main() {
	zlog.SetDefault(zlog.NewAuto(zlog.LevelInfo, os.Stderr))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	name := os.Args[1]
	for _, sc := range subcommands {
		if sc.name == name {
			if err := sc.run(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "zplctl:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "zplctl: unknown subcommand %q\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  zplctl convert json5-to-csv <in> <out>")
	fmt.Fprintln(os.Stderr, "  zplctl convert csv-to-json5 <in> <out>")
	fmt.Fprintln(os.Stderr, "  zplctl bench-jobs")
}
