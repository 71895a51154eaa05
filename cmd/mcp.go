package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/menubot/internal/content"
	mcpserver "github.com/ziadkadry99/menubot/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing content search, menu item lookup and the FAQ to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		store := content.NewStore(cfg.ContentFile, log)
		tree := store.Load()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "menubot MCP server started on stdio (content=%s, items=%d, faq=%d)\n",
			cfg.ContentFile, len(tree.MainMenu), len(tree.FAQ))

		return mcpserver.NewServer(store).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
