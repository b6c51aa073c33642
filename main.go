package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/victorjacobs/ha-multisensor/config"
	"github.com/victorjacobs/ha-multisensor/render"
)

// logLevelEnv selects the logrus level. Arguments are never parsed as flags,
// so this is the only way to change it.
const logLevelEnv = "LOG_LEVEL"

func logLevel() (log.Level, error) {
	value, ok := os.LookupEnv(logLevelEnv)
	if !ok || value == "" {
		return log.InfoLevel, nil
	}

	level, err := log.ParseLevel(value)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid %v: %w", logLevelEnv, err)
	}

	return level, nil
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ha-multisensor <sensorId> <friendlyName>",
		Short: "Generate Home Assistant configuration for a multisensor",
		Long: `ha-multisensor prints the light, sensor and group configuration for a
multisensor publishing its state on multi/<SENSORID>/state.

Both arguments are used verbatim, including ones starting with "-".
Set LOG_LEVEL=debug to log the derived identifiers to stderr.`,
		Example: `  ha-multisensor abc123 "Front Porch" >> configuration.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := config.FromArgs(args)
			return err
		},
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())

			level, err := logLevel()
			if err != nil {
				log.Warn(err)
			}
			log.SetLevel(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			multisensor, err := config.FromArgs(args)
			if err != nil {
				return err
			}

			for _, warning := range multisensor.Warnings() {
				log.Warn(warning)
			}

			log.WithFields(log.Fields{
				"sensor_id": multisensor.NormalizedSensorId(),
				"slug":      multisensor.Slug(),
				"topic":     multisensor.StateTopic(),
			}).Debug("Rendering multisensor configuration")

			return render.Write(cmd.OutOrStdout(), multisensor)
		},
	}
}

func main() {
	log.SetOutput(os.Stderr)

	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
