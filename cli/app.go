package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/loader"
	"github.com/katalvlaran/metro/planner"
	"github.com/katalvlaran/metro/render"
	"github.com/katalvlaran/metro/search"
)

// app is everything a subcommand needs, built once per invocation.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	net    *core.Network
	routes *planner.Planner
	finder *search.Engine
	tariff fare.Calculator
	out    *render.Printer
}

// newApp loads configuration and the network.
func (i *Input) newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(i.configPath)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, i.verbose)
	if err != nil {
		return nil, err
	}

	net := core.NewNetwork(core.WithLogger(log))
	st, err := loader.New(loader.WithLogger(log)).LoadFiles(i.files(cfg), net)
	if err != nil {
		return nil, err
	}
	log.WithField("stations", net.StationCount()).
		WithField("connections", net.EdgeCount()).
		WithField("skipped", st.Skipped).
		Debug("network ready")

	tariff := cfg.Calculator()

	return &app{
		cfg: cfg,
		log: log,
		net: net,
		routes: planner.New(net,
			planner.WithFare(tariff.Fare),
			planner.WithCacheSize(cfg.CacheSize),
			planner.WithTTL(cfg.CacheTTL()),
			planner.WithLogger(log),
		),
		finder: search.New(net),
		tariff: tariff,
		out:    render.New(cmd.OutOrStdout(), !i.noColor && isTerminal(cmd.OutOrStdout())),
	}, nil
}

// requireStations returns core.ErrStationNotFound for the first unknown name.
func (a *app) requireStations(names ...string) error {
	for _, n := range names {
		if !a.net.HasStation(n) {
			return fmt.Errorf("%w: %q", core.ErrStationNotFound, n)
		}
	}

	return nil
}

// report turns lookup failures into a message and passes anything else on.
func (a *app) report(err error) error {
	if errors.Is(err, core.ErrStationNotFound) {
		a.log.WithError(err).Debug("query rejected")

		return a.out.Warning("%v", err)
	}

	return err
}
