package cmd

import (
	"github.com/bnema/airella-bridge/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	settings := newSettings()

	rootCmd := &cobra.Command{
		Use:           "airella-bridge",
		Short:         "Forward Airella station data to the AGH API",
		Long:          "airella-bridge logs in to the Airella API, collects the latest readings of every station, drops stale or incomplete snapshots and posts the rest to the AGH ingestion API every few minutes.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.configPath, "config", "", "config file (default $HOME/.config/airella-bridge/config.toml)")
	flags.String("stations", "", "List of station ids, separated by comma (all account stations when empty)")
	flags.String("email", "", "Email of account at Airella")
	flags.String("password", "", "Password of account at Airella")
	flags.String("airella-api-url", "", "Airella API URL")
	flags.String("agh-api-url", "", "AGH API URL")
	flags.String("agh-api-token", "", "AGH API token")
	flags.Duration("interval", config.DefaultInterval, "Time between two cycles")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.String("log-format", config.DefaultLogFormat, "Log format: text or json")
	flags.String("metrics-addr", "", "Serve /metrics and /healthz on this address")

	if err := settings.bindFlags(flags); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(settings),
		newOnceCmd(settings),
		newStationsCmd(settings),
		newConfigCmd(settings),
	)

	return rootCmd
}
