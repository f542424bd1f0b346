// Command geolog exercises the logging scaffold from the command line:
// it provisions loggers the way a data-processing script would and runs
// a small CSV copy pipeline with tabular previews in the log.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cartoworks/geolog/config"
	"github.com/cartoworks/geolog/logger"
)

const (
	appName  = "geolog"
	appShort = "geolog provisions loggers for data-processing scripts"

	logLevelFlagName  = "log-level"
	logLevelFlagUsage = "override the configured severity (DEBUG, INFO, WARNING, ERROR, CRITICAL or a numeric code)"
	configFlagName    = "config"
	configFlagUsage   = "optional YAML settings file overlaid on the environment"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel   string
	configPath string
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, "v", "", logLevelFlagUsage)
	flags.StringVar(&f.configPath, configFlagName, "", configFlagUsage)
}

// loadSettings resolves the effective settings: environment, then the
// optional YAML overlay, then the --log-level flag on top.
func (f *rootFlags) loadSettings() (*config.Settings, error) {
	settings, err := config.LoadFile(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		if _, err := logger.ParseLevel(f.logLevel); err != nil {
			return nil, err
		}
		settings.LogLevel = f.logLevel
	}
	return settings, nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flag := &rootFlags{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: appShort,

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		demoCmd(flag),
		processCmd(flag),
	)
	return cmd
}
