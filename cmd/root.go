package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/menubot/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "menubot",
	Short: "Menu-driven information bot for an admissions office",
	Long: `menubot serves a button menu, document lists, FAQ and keyword search
from a single JSON content file. Users reach it through a Telegram webhook
or a websocket chat; admins edit the content over HTTP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
