package cmd

import (
	"fmt"
	"log"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/coverage/sensor"
	"v.io/x/lib/cmdline"
)

func newCmdCover() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "cover",
		Short:    "Print the merged intervals of a file",
		ArgsName: "path",
		Long: `
Reads one interval per line as two whitespace-separated integers "lo hi"
(closed by default) and writes a TSV with columns kind, lo, hi and width.
Rows of kind "range" are the merged intervals in ascending order; "gap" rows
(with -gaps) are the holes between them.  The last two rows are the bounds
and the number of covered positions ("area").`,
	}
	opts := coverOpts{}
	cmd.Flags.BoolVar(&opts.halfOpen, "half-open", false, "Interpret each line as a half-open [lo, hi) interval")
	cmd.Flags.BoolVar(&opts.gaps, "gaps", false, "Also print the uncovered gaps between merged intervals")
	cmd.Flags.StringVar(&opts.clip, "clip", "", "Restrict output to the given interval, formatted as <lo>-<hi>, <lo>..<hi> or <pos>")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("cover takes one pathname argument, but got %v", argv)
		}
		return cover(vcontext.Background(), env.Stdout, argv[0], opts)
	})
	return cmd
}

func newCmdChecksum() *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "checksum",
		Short: `Compute a checksum of the merged intervals of each file.
Files that cover the same positions have the same checksum`,
		ArgsName: "path...",
	}
	opts := coverOpts{}
	cmd.Flags.BoolVar(&opts.halfOpen, "half-open", false, "Interpret each line as a half-open [lo, hi) interval")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("checksum takes at least one pathname argument")
		}
		return checksum(vcontext.Background(), env.Stdout, argv, opts)
	})
	return cmd
}

func newCmdSensors() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "sensors",
		Short:    "Solve the sensor/beacon exclusion puzzle",
		ArgsName: "path",
		Long: `
Part 1 is the number of positions on row -row where no beacon can be.
Part 2 is the tuning frequency of the only position in [0, -max] x [0, -max]
not covered by any sensor.`,
	}
	opts := sensorsOpts{}
	cmd.Flags.Int64Var(&opts.row, "row", defaultRow, "Row to count excluded positions on")
	cmd.Flags.Int64Var(&opts.max, "max", defaultMax, "Upper bound of both coordinates in the beacon search")
	cmd.Flags.IntVar(&opts.search.Parallelism, "parallelism", sensor.DefaultSearchOpts.Parallelism, "Number of row-scanning jobs; 0 = runtime.NumCPU()")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("sensors takes one pathname argument, but got %v", argv)
		}
		if opts.max < 0 {
			return fmt.Errorf("-max must be nonnegative, got %d", opts.max)
		}
		return sensors(vcontext.Background(), env.Stdout, argv[0], opts)
	})
	return cmd
}

// Run parses the command line and runs the selected subcommand.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "coverage",
			Short:    "Tools for working with integer interval coverages",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdCover(),
				newCmdChecksum(),
				newCmdSensors(),
			},
		})
}
