package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/menubot/internal/content"
	"github.com/ziadkadry99/menubot/internal/logging"
	"github.com/ziadkadry99/menubot/internal/search"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the content file like the bot does",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		query := strings.ToLower(strings.TrimSpace(strings.Join(args, " ")))
		tree := content.NewStore(cfg.ContentFile, logging.Nop()).Load()
		hits := search.Search(query, tree)

		if searchJSON {
			if hits == nil {
				hits = []search.Hit{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(hits)
		}

		if len(hits) == 0 {
			fmt.Printf("No results for %q.\n", query)
			return nil
		}
		fmt.Printf("Found %d result(s) for %q:\n\n", len(hits), query)
		for i, h := range hits {
			target := h.ActionID
			if h.URL != "" {
				target = h.URL
			}
			fmt.Printf("%3d. %s\n     %s\n", i+1, h.Label, target)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print hits as JSON")
	rootCmd.AddCommand(searchCmd)
}
