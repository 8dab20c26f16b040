package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/scenario"
)

// app carries the state shared by every subcommand.
type app struct {
	scenarioPath string
	verbose      bool

	out   io.Writer
	log   *slog.Logger
	realm *core.Realm
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "realm",
		Short:         "Query towns, vassalships and roads of a realm scenario",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			return a.load()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.scenarioPath, "scenario", "s", "", "path to the scenario YAML file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log realm mutations to stderr")

	root.AddCommand(
		a.townsCmd(),
		a.nearestCmd(),
		a.taxersCmd(),
		a.longestCmd(),
		a.taxCmd(),
		a.routeCmd(),
		a.cycleCmd(),
		a.trimCmd(),
		a.roadsCmd(),
	)

	return root
}

// load reads the scenario and builds the realm.
func (a *app) load() error {
	if a.scenarioPath == "" {
		return errors.New("realm: --scenario is required")
	}
	s, err := scenario.LoadFile(a.scenarioPath)
	if err != nil {
		return err
	}
	a.realm, err = s.Build(core.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.log.Info("scenario loaded", "path", a.scenarioPath, "towns", a.realm.TownCount(), "roads", a.realm.RoadCount())

	return nil
}

// printIDs writes one id per line.
func (a *app) printIDs(ids []core.TownID) {
	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
}

// notFound turns a missing-town error into the sentinel output.
// It reports false for every other error.
func (a *app) notFound(err error) bool {
	if !errors.Is(err, core.ErrTownNotFound) {
		return false
	}
	a.log.Warn("town not found", "err", err)
	fmt.Fprintln(a.out, core.NoTownID)

	return true
}
