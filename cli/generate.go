package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/loader"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	outDir      string
	seed        int64
	extraLinks  float64
	minDistance float64
	maxDistance float64
}

func newGenerateCommand(input *Input) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate line NAME N | ring NAME N | grid ROWS COLS",
		Short: "Write a synthetic network as stations and connections CSV",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := topology(args)
			if err != nil {
				return err
			}
			cons := []builder.Constructor{con}
			if opts.extraLinks > 0 {
				cons = append(cons, builder.RandomLinks(opts.extraLinks))
			}
			if opts.minDistance < 0 || opts.maxDistance < opts.minDistance {
				return errors.Errorf("invalid distance range [%g, %g]", opts.minDistance, opts.maxDistance)
			}
			bopts := []builder.BuilderOption{
				builder.WithSeed(opts.seed),
				builder.WithDistanceFn(builder.UniformWeightFn(opts.minDistance, opts.maxDistance)),
			}

			log, err := newLogger(cmd.ErrOrStderr(), "info", input.verbose)
			if err != nil {
				return err
			}
			n, err := builder.BuildNetwork([]core.Option{core.WithLogger(log)}, bopts, cons...)
			if err != nil {
				return err
			}
			if opts.outDir == "" {
				return writeNetwork(cmd.OutOrStdout(), cmd.OutOrStdout(), n)
			}

			return writeNetworkFiles(opts.outDir, n)
		},
	}
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "directory for stations.csv and connections.csv (default: stdout)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&opts.extraLinks, "extra-links", 0, "probability of an extra connection between any two stations")
	cmd.Flags().Float64Var(&opts.minDistance, "min-distance", 1, "shortest generated connection (km)")
	cmd.Flags().Float64Var(&opts.maxDistance, "max-distance", 1, "longest generated connection (km)")

	return cmd
}

// topology maps "kind a b" to a builder constructor.
func topology(args []string) (builder.Constructor, error) {
	kind := args[0]
	switch kind {
	case "line", "ring":
		size, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, errors.Errorf("invalid size %q", args[2])
		}
		if kind == "line" {
			return builder.Line(args[1], size), nil
		}

		return builder.Ring(args[1], size), nil
	case "grid":
		rows, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, errors.Errorf("invalid rows %q", args[1])
		}
		cols, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, errors.Errorf("invalid cols %q", args[2])
		}

		return builder.Grid(rows, cols), nil
	default:
		return nil, errors.Errorf("unknown topology %q, want line, ring or grid", kind)
	}
}

func writeNetwork(stations, connections io.Writer, n *core.Network) error {
	if err := loader.WriteStations(stations, n); err != nil {
		return err
	}

	return loader.WriteConnections(connections, n)
}

func writeNetworkFiles(dir string, n *core.Network) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	sf, err := os.Create(filepath.Join(dir, "stations.csv"))
	if err != nil {
		return errors.Wrap(err, "creating stations file")
	}
	defer sf.Close()
	cf, err := os.Create(filepath.Join(dir, "connections.csv"))
	if err != nil {
		return errors.Wrap(err, "creating connections file")
	}
	defer cf.Close()

	if err := writeNetwork(sf, cf, n); err != nil {
		return err
	}
	if err := sf.Close(); err != nil {
		return errors.Wrap(err, "closing stations file")
	}

	return errors.Wrap(cf.Close(), "closing connections file")
}
