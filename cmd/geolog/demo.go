package main

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/cartoworks/geolog/logger"
)

const (
	demoCmdShort = "provision the root logger and emit one record per severity"
	demoCmdLong  = `Provision the root logger with a console sink and a timestamped
	logfile under the configured log directory, then emit one record at
	every severity. Records below the configured threshold are dropped,
	so the output doubles as a quick check of the effective level.`

	demoCmdExample = `# log at every severity with a DEBUG threshold
	geolog --log-level DEBUG demo`
)

func demoCmd(flag *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   demoCmdShort,
		Long:    heredoc.Doc(demoCmdLong),
		Example: heredoc.Doc(demoCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := flag.loadSettings()
			if err != nil {
				return err
			}

			logPath := settings.LogfilePath("demo", time.Now())
			log, err := logger.Get("", logger.Config{
				Level:         settings.LogLevel,
				LogfilePath:   logPath,
				ConsoleWriter: cmd.OutOrStdout(),
				AttachBridge:  true,
			})
			if err != nil {
				return err
			}

			log.Debug("nauseatingly detailed debugging message")
			log.Info("informational message")
			log.Warning("the sky may be falling")
			log.Error("the sky is falling")
			log.Critical("the sky has fallen")

			cmd.Println("logfile:", logPath)
			return log.Close()
		},
	}
}
