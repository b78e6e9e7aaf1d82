package cli

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/loader"
)

// Input contains the input for the root command
type Input struct {
	configPath      string
	stationsPath    string
	connectionsPath string
	networkPath     string
	verbose         bool
	noColor         bool
}

// addPersistentFlags binds the flags shared by every subcommand.
func (i *Input) addPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&i.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&i.stationsPath, "stations", "s", "", "stations CSV (Name,Line,Zone,Latitude,Longitude)")
	flags.StringVar(&i.connectionsPath, "connections", "", "connections CSV (StationA,StationB,Distance)")
	flags.StringVarP(&i.networkPath, "network", "n", "", "network YAML with stations and connections")
	flags.BoolVarP(&i.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&i.noColor, "no-color", false, "disable colored output")
}

// files resolves which inputs to load. Flags beat the config. When a network
// file is in play, CSV paths from the config are ignored and only CSV flags
// given explicitly are added on top.
func (i *Input) files(cfg *config.Config) loader.Files {
	network := pick(i.networkPath, cfg.NetworkFile)
	if network != "" {
		return loader.Files{Network: network, Stations: i.stationsPath, Connections: i.connectionsPath}
	}

	return loader.Files{
		Stations:    pick(i.stationsPath, cfg.StationsFile),
		Connections: pick(i.connectionsPath, cfg.ConnectionsFile),
	}
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}

	return fallback
}
