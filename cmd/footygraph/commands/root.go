package commands

import (
	"context"

	"footygraph/lib/telemetry"
	"footygraph/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	configName *string
	verbose    *bool
)

var cfg Config

var rootCmd = &cobra.Command{
	Use:   "footygraph",
	Short: "footygraph scrapes football identities and stats into a single graph.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)

		loaded, err := loadConfig(*configName)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	configName = rootCmd.PersistentFlags().String("config", "footygraph.json5", "The json5 config file to read.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		serviceutil.Fatal("footygraph failed", err)
	}
}
