package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/dfs"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/prim_kruskal"
	"github.com/katalvlaran/metro/render"
)

func newRouteCommand(input *Input) *cobra.Command {
	var batch string
	cmd := &cobra.Command{
		Use:   "route FROM TO | route --batch FILE",
		Short: "Shortest route between two stations with fare and transfers",
		Args:  cobra.MaximumNArgs(2),
		RunE: withApp(input, func(cmd *cobra.Command, a *app, args []string) error {
			if batch == "" {
				if len(args) != 2 {
					return errors.New("route needs FROM and TO, or --batch FILE")
				}

				return a.route(args[0], args[1])
			}
			if len(args) != 0 {
				return errors.New("--batch takes no stations as arguments")
			}

			return a.routeBatch(batch, cmd.InOrStdin())
		}),
	}
	cmd.Flags().StringVarP(&batch, "batch", "b", "", "CSV of FROM,TO queries to answer in one run (\"-\" reads stdin)")

	return cmd
}

func newFareCommand(input *Input) *cobra.Command {
	var roundTrip bool
	cmd := &cobra.Command{
		Use:   "fare DISTANCE MAXZONE",
		Short: "Price a journey from its distance in km and highest zone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			distance, err := strconv.ParseFloat(args[0], 64)
			if err != nil || distance < 0 {
				return errors.Errorf("invalid distance %q", args[0])
			}
			zone, err := strconv.Atoi(args[1])
			if err != nil || zone < 0 {
				return errors.Errorf("invalid zone %q", args[1])
			}
			a, err := input.newApp(cmd)
			if err != nil {
				return err
			}
			b := a.tariff.Breakdown(distance, zone)
			if err := a.out.FareBreakdown(b, fare.Category(b.Total)); err != nil {
				return err
			}
			if roundTrip {
				return a.out.Message("  Round trip: %d", a.tariff.RoundTrip(distance, zone))
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&roundTrip, "round-trip", "r", false, "also print the return fare")

	return cmd
}

func newSearchCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find stations by name, line, zone, prefix or position",
	}
	list := func(use, short string, find func(a *app, arg string) ([]string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: withApp(input, func(_ *cobra.Command, a *app, args []string) error {
				names, err := find(a, args[0])
				if err != nil {
					return err
				}

				return a.out.StationTable(names, a.net.Station)
			}),
		}
	}
	cmd.AddCommand(
		list("name QUERY", "Stations whose name contains QUERY (case-insensitive)", func(a *app, q string) ([]string, error) {
			return a.finder.ByName(q), nil
		}),
		list("line LINE", "Stations on LINE (case-insensitive)", func(a *app, l string) ([]string, error) {
			return a.finder.ByLine(l), nil
		}),
		list("zone ZONE", "Stations in ZONE", func(a *app, z string) ([]string, error) {
			zone, err := strconv.Atoi(z)
			if err != nil {
				return nil, errors.Errorf("invalid zone %q", z)
			}

			return a.finder.ByZone(zone), nil
		}),
		list("prefix PREFIX", "Stations whose name starts with PREFIX (case-insensitive)", func(a *app, p string) ([]string, error) {
			return a.finder.Autocomplete(p), nil
		}),
		&cobra.Command{
			Use:   "nearest LAT LON",
			Short: "Station closest to a coordinate",
			Args:  cobra.ExactArgs(2),
			RunE: withApp(input, func(_ *cobra.Command, a *app, args []string) error {
				lat, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return errors.Errorf("invalid latitude %q", args[0])
				}
				lon, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return errors.Errorf("invalid longitude %q", args[1])
				}
				m, ok := a.finder.NearestMatch(lat, lon)
				if !ok {
					return a.out.StationTable(nil, a.net.Station)
				}
				if err := a.out.StationTable([]string{m.Station.Name}, a.net.Station); err != nil {
					return err
				}

				return a.out.Message("  Distance: %.4f", m.Distance)
			}),
		},
	)

	return cmd
}

func newLinesCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "lines [LINE]",
		Short: "List lines, or the stations of one line",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(input, func(_ *cobra.Command, a *app, args []string) error {
			if len(args) == 1 {
				return a.out.StationTable(a.finder.ByLine(args[0]), a.net.Station)
			}

			return a.out.Lines(a.net.Lines(), func(l string) int { return len(a.net.StationsByLine(l)) })
		}),
	}
}

func newTraverseCommand(input *Input) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:       "traverse bfs|dfs START",
		Short:     "Stations reachable from START in breadth- or depth-first order",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"bfs", "dfs"},
		RunE: withApp(input, func(_ *cobra.Command, a *app, args []string) error {
			mode, start := args[0], args[1]
			if err := a.requireStations(start); err != nil {
				return err
			}
			switch mode {
			case "bfs":
				res := bfs.BFS(a.net, start, bfs.WithMaxDepth(depth))

				return a.out.Order("BFS from "+start, res.Order)
			case "dfs":
				return a.out.Order("DFS from "+start, dfs.DFS(a.net, start))
			default:
				return errors.Errorf("unknown traversal %q, want bfs or dfs", mode)
			}
		}),
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "BFS only: stop expanding at this many hops (0 = unlimited)")

	return cmd
}

func newPathsCommand(input *Input) *cobra.Command {
	var maxPaths, maxStops int
	cmd := &cobra.Command{
		Use:   "paths FROM TO",
		Short: "Every simple path between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(input, func(cmd *cobra.Command, a *app, args []string) error {
			if err := a.requireStations(args[0], args[1]); err != nil {
				return err
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			paths := dfs.AllPaths(a.net, args[0], args[1], dfs.WithMaxPaths(maxPaths), dfs.WithMaxStops(maxStops))

			return a.out.Paths(paths)
		}),
	}
	cmd.Flags().IntVarP(&maxPaths, "max", "m", 100, "stop after this many paths (0 = unlimited)")
	cmd.Flags().IntVar(&maxStops, "max-stops", 0, "ignore paths with more hops than this (0 = unlimited)")

	return cmd
}

func newAnalyzeCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Structural analysis of the whole network",
	}

	var method, root string
	mst := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (Prim) or forest (Kruskal)",
		Args:  cobra.NoArgs,
		RunE: withApp(input, func(_ *cobra.Command, a *app, _ []string) error {
			if root != "" {
				if err := a.requireStations(root); err != nil {
					return err
				}
			}
			tree, err := prim_kruskal.Compute(a.net, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root))
			if err != nil {
				return errors.Wrapf(err, "method %q", method)
			}

			return a.out.Tree(tree)
		}),
	}
	mst.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "prim or kruskal")
	mst.Flags().StringVar(&root, "root", "", "Prim start station (default: first station loaded)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "cycles",
			Short: "Report whether the network contains a cycle",
			Args:  cobra.NoArgs,
			RunE: withApp(input, func(_ *cobra.Command, a *app, _ []string) error {
				return a.out.Cycle(dfs.HasCycle(a.net))
			}),
		},
		&cobra.Command{
			Use:   "components",
			Short: "Connected components",
			Args:  cobra.NoArgs,
			RunE: withApp(input, func(_ *cobra.Command, a *app, _ []string) error {
				return a.out.Components(bfs.Components(a.net))
			}),
		},
		mst,
		&cobra.Command{
			Use:   "stats",
			Short: "Network size summary",
			Args:  cobra.NoArgs,
			RunE: withApp(input, func(_ *cobra.Command, a *app, _ []string) error {
				return a.out.Stats(render.NetworkStats{
					Stations:    a.net.StationCount(),
					Connections: a.net.EdgeCount(),
					Lines:       len(a.net.Lines()),
					Components:  len(bfs.Components(a.net)),
					HasCycle:    dfs.HasCycle(a.net),
				})
			}),
		},
	)

	return cmd
}
