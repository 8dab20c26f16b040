package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realm/astar"
	"github.com/katalvlaran/realm/bfs"
	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/dfs"
	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/kruskal"
	"github.com/katalvlaran/realm/vassal"
)

func (a *app) townsCmd() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "towns",
		Short: "List towns ordered by id, name or distance from the origin",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			switch by {
			case "id":
				a.printIDs(a.realm.Towns())
			case "name":
				a.printIDs(a.realm.TownsAlphabetically())
			case "distance":
				a.printIDs(a.realm.TownsByDistance())
			default:
				return fmt.Errorf("realm: unknown order %q (want id, name or distance)", by)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "id", "order: id, name or distance")

	return cmd
}

func (a *app) nearestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearest X Y",
		Short: "List towns by distance from a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("realm: x: %w", err)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("realm: y: %w", err)
			}
			a.printIDs(a.realm.TownsNearest(geo.Coord{X: x, Y: y}))

			return nil
		},
	}
}

// pathCmd builds a single-town query that prints a town sequence.
func (a *app) pathCmd(use, short string, query func(*core.Realm, core.TownID) ([]core.TownID, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := query(a.realm, core.TownID(args[0]))
			if a.notFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			a.printIDs(ids)

			return nil
		},
	}
}

func (a *app) taxersCmd() *cobra.Command {
	return a.pathCmd("taxers", "List a town and its masters up to the top", vassal.TaxerPath)
}

func (a *app) longestCmd() *cobra.Command {
	return a.pathCmd("longest", "List the longest chain of vassals below a town", vassal.LongestPath)
}

func (a *app) cycleCmd() *cobra.Command {
	return a.pathCmd("cycle", "Find a road cycle reachable from a town", func(r *core.Realm, id core.TownID) ([]core.TownID, error) {
		return dfs.FindCycle(r, id)
	})
}

func (a *app) taxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tax ID",
		Short: "Print the net tax a town keeps",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			net, err := vassal.NetTax(a.realm, core.TownID(args[0]))
			if a.notFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, net)

			return nil
		},
	}
}

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "route fewest|shortest|any FROM TO",
		Short:     "Find a route between two towns",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"fewest", "shortest", "any"},
		RunE: func(_ *cobra.Command, args []string) error {
			from, to := core.TownID(args[1]), core.TownID(args[2])
			var (
				ids    []core.TownID
				length = geo.NoDistance
				err    error
			)
			switch args[0] {
			case "fewest":
				ids, err = bfs.FewestRoads(a.realm, from, to)
			case "any":
				ids, err = dfs.AnyRoute(a.realm, from, to)
			case "shortest":
				ids, length, err = astar.ShortestRoute(a.realm, from, to)
			default:
				return fmt.Errorf("realm: unknown route kind %q", args[0])
			}
			if a.notFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			a.printIDs(ids)
			if len(ids) > 0 && length != geo.NoDistance {
				fmt.Fprintf(a.out, "length %d\n", length)
			}

			return nil
		},
	}
}

func (a *app) trimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim",
		Short: "Reduce the roads to a minimum spanning forest and print what remains",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			total, err := kruskal.TrimRoads(a.realm)
			if err != nil {
				return err
			}
			a.printRoads()
			fmt.Fprintf(a.out, "total %d\n", total)

			return nil
		},
	}
}

func (a *app) roadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roads",
		Short: "List every road with its length",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.printRoads()

			return nil
		},
	}
}

func (a *app) printRoads() {
	for _, rd := range a.realm.Roads() {
		fmt.Fprintf(a.out, "%s %s %d\n", rd.From, rd.To, rd.Length)
	}
}
