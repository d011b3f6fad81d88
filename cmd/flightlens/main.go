// Command flightlens answers analytical questions over an airline dataset:
// network connectivity, punctuality, revenue, and customer value. The
// dataset is a directory of parquet extracts (see the store package); every
// subcommand loads a snapshot, runs one engine, and renders a flat table.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/flightlens/analytics"
	"github.com/vegasq/flightlens/loyalty"
	"github.com/vegasq/flightlens/network"
	"github.com/vegasq/flightlens/output"
	"github.com/vegasq/flightlens/store"
)

var (
	dataDir    string
	formatName string
)

func main() {
	root := &cobra.Command{
		Use:           "flightlens",
		Short:         "Analytical queries over an airline operations and commerce dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "data", "directory holding the parquet extracts")
	root.PersistentFlags().StringVar(&formatName, "format", "table", "output format: table, csv, jsonl")

	root.AddCommand(
		reachableCmd(),
		pathsCmd(),
		punctualityCmd(),
		routesCmd(),
		delaysCmd(),
		airportsCmd(),
		revenueCmd(),
		faresCmd(),
		channelsCmd(),
		customersCmd(),
		tiersCmd(),
		generateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSnapshot reads the dataset directory selected by --data.
func loadSnapshot() (*store.Snapshot, error) {
	snap, err := store.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", dataDir, err)
	}
	return snap, nil
}

// newFormatter builds the formatter selected by --format.
func newFormatter() (output.Formatter, error) {
	switch formatName {
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want table, csv, or jsonl)", formatName)
	}
}

// render writes a report in the selected format.
func render(r *output.Report) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}
	return formatter.Format(r)
}

// buildGraph loads the snapshot and builds the route graph, resolving the
// origin airport code.
func buildGraph(originCode string) (*network.Graph, int64, error) {
	snap, err := loadSnapshot()
	if err != nil {
		return nil, 0, err
	}
	g, err := network.Build(snap)
	if err != nil {
		return nil, 0, err
	}
	origin, ok := g.AirportID(originCode)
	if !ok {
		return nil, 0, fmt.Errorf("unknown airport %q", originCode)
	}
	return g, origin, nil
}

func reachableCmd() *cobra.Command {
	var maxHops int
	cmd := &cobra.Command{
		Use:   "reachable <origin>",
		Short: "Airports reachable from an origin within a hop bound, with minimum hop counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, origin, err := buildGraph(args[0])
			if err != nil {
				return err
			}
			reaches, err := g.ReachableWithin(origin, maxHops)
			if err != nil {
				return err
			}

			rows := make([]map[string]interface{}, len(reaches))
			for i, r := range reaches {
				rows[i] = map[string]interface{}{"airport": r.Label, "hops": int64(r.Hops)}
			}
			return render(&output.Report{Columns: []string{"airport", "hops"}, Rows: rows})
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 3, "maximum number of route edges to traverse")
	return cmd
}

func pathsCmd() *cobra.Command {
	var maxHops, maxPaths int
	cmd := &cobra.Command{
		Use:   "paths <origin>",
		Short: "Simple directed paths from an origin up to a hop bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, origin, err := buildGraph(args[0])
			if err != nil {
				return err
			}
			paths, err := g.EnumeratePaths(origin, maxHops, network.Limits{MaxPaths: maxPaths})
			if err != nil {
				return err
			}

			rows := make([]map[string]interface{}, len(paths))
			for i, p := range paths {
				rows[i] = map[string]interface{}{
					"path":        strings.Join(p.Labels, " -> "),
					"hops":        int64(len(p.Labels) - 1),
					"distance_km": p.DistanceKM,
				}
			}
			return render(&output.Report{Columns: []string{"path", "hops", "distance_km"}, Rows: rows})
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 3, "maximum number of route edges per path")
	cmd.Flags().IntVar(&maxPaths, "max-paths", 0, "abort after this many paths (0 = unlimited)")
	return cmd
}

func punctualityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "punctuality",
		Short: "Airline on-time performance ranked by average delay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, err := analytics.AirlinePunctuality(snap)
			if err != nil {
				return err
			}
			return render(report)
		},
	}
}

func routesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Worst routes by average delay, with cancellation rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, err := analytics.WorstRoutes(snap, limit)
			if err != nil {
				return err
			}
			return render(report)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of routes to report (0 = all)")
	return cmd
}

func delaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delays",
		Short: "Percentage of flights delayed more than 15 minutes, by month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, err := analytics.DelayRateByMonth(snap)
			if err != nil {
				return err
			}
			return render(report)
		},
	}
}

func airportsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "airports",
		Short: "Busiest airports by total flight movements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, err := analytics.BusiestAirports(snap, limit)
			if err != nil {
				return err
			}
			return render(report)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of airports to report (0 = all)")
	return cmd
}

func revenueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revenue",
		Short: "Monthly captured revenue with a running cumulative total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, err := analytics.MonthlyRevenue(snap)
			if err != nil {
				return err
			}
			return render(report)
		},
	}
}

func faresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fares",
		Short: "Revenue and bookings by fare class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, err := analytics.RevenueByFareClass(snap)
			if err != nil {
				return err
			}
			return render(report)
		},
	}
}

func channelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "Payment success rate by booking channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			report, excluded, err := analytics.PaymentSuccessByChannel(snap)
			if err != nil {
				return err
			}
			if len(excluded) > 0 {
				fmt.Fprintf(os.Stderr, "excluded channels with no payments: %s\n", strings.Join(excluded, ", "))
			}
			return render(report)
		},
	}
}

func customersCmd() *cobra.Command {
	var topPct float64
	var includeInactive bool
	var all bool
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Customer lifetime value: full ranking or the top segment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}

			if all {
				report, err := analytics.CustomerValue(snap)
				if err != nil {
					return err
				}
				return render(report)
			}

			report, share, err := analytics.TopCustomers(snap, topPct/100, includeInactive)
			if err != nil {
				return err
			}
			if err := render(report); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "top %.1f%% of customers generate %.1f%% of captured revenue\n", topPct, share*100)
			return nil
		},
	}
	cmd.Flags().Float64Var(&topPct, "top", 5, "percentile cutoff: report the top K% of customers")
	cmd.Flags().BoolVar(&includeInactive, "include-inactive", false, "rank loyalty account holders without payments at zero value")
	cmd.Flags().BoolVar(&all, "all", false, "report every customer instead of the top segment")
	return cmd
}

func tiersCmd() *cobra.Command {
	var schemeFile, policyName string
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Loyalty tier transitions: stored tier vs qualified tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}

			scheme := loyalty.DefaultScheme()
			if schemeFile != "" {
				scheme, err = loyalty.LoadScheme(schemeFile)
				if err != nil {
					return err
				}
			}
			policy, ok := loyalty.ParsePolicy(policyName)
			if !ok {
				return fmt.Errorf("unknown miles policy %q (want earn-only, earn-net, or all-entries)", policyName)
			}

			transitions, err := loyalty.Transitions(snap, scheme, policy)
			if err != nil {
				return err
			}

			rows := make([]map[string]interface{}, len(transitions))
			for i, t := range transitions {
				movement, err := loyalty.Movement(scheme, t)
				if err != nil {
					return err
				}
				label := "unchanged"
				if movement > 0 {
					label = "upgrade"
				} else if movement < 0 {
					label = "downgrade"
				}
				rows[i] = map[string]interface{}{
					"current_tier":   string(t.Current),
					"qualified_tier": string(t.Qualified),
					"accounts":       t.Accounts,
					"movement":       label,
				}
			}
			return render(&output.Report{
				Columns: []string{"current_tier", "qualified_tier", "accounts", "movement"},
				Rows:    rows,
			})
		},
	}
	cmd.Flags().StringVar(&schemeFile, "tiers-config", "", "YAML tier threshold file (default: built-in scheme)")
	cmd.Flags().StringVar(&policyName, "miles-policy", "earn-only", "lifetime miles rule: earn-only, earn-net, all-entries")
	return cmd
}
