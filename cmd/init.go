package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/menubot/internal/config"
	"github.com/ziadkadry99/menubot/internal/content"
)

var initDefaults bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize menubot configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure menubot and generates a .menubot.yml
file. A sample content file is written if the configured one does not exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		if initDefaults {
			cfg = config.DefaultConfig()
			if err := cfg.Save(cfgFile); err != nil {
				return err
			}
		} else {
			var err error
			if cfg, err = config.RunWizard(cfgFile); err != nil {
				return err
			}
		}
		fmt.Printf("Config written to %s\n", cfgFile)

		return writeSampleContent(cfg.ContentFile)
	},
}

// writeSampleContent creates path with the bundled sample content unless it
// already exists.
func writeSampleContent(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}
	if err := os.WriteFile(path, content.SampleJSON(), 0o644); err != nil {
		return fmt.Errorf("writing sample content: %w", err)
	}
	fmt.Printf("Sample content written to %s\n", path)
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write the default config without prompting")
	rootCmd.AddCommand(initCmd)
}
