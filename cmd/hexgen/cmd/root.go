package cmd

import (
	"github.com/kurumiimari/hexbytes/log"
	"github.com/spf13/cobra"
	"os"
)

var debug bool

var genLogger = log.ModuleLogger("hexgen")

var rootCmd = &cobra.Command{
	Use:          "hexgen",
	Short:        "Generates Go byte-array declarations from hex literals",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDebug(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enables debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
