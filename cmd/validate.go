package cmd

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/menubot/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file or pattern...]",
	Short: "Check content files for parse errors and broken references",
	Long: `Parses content files and reports shape problems, duplicate or reserved
action ids and empty FAQ entries. Arguments may be paths or ** glob
patterns; with none, the configured content file is checked. Exits
non-zero when anything is wrong.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		if len(args) == 0 {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paths = []string{cfg.ContentFile}
		} else {
			var err error
			if paths, err = expandPatterns(args); err != nil {
				return err
			}
		}

		failed := 0
		for _, path := range paths {
			if !validateFile(path) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) have problems", failed, len(paths))
		}
		return nil
	},
}

// expandPatterns resolves glob patterns. Arguments without glob matches
// are kept as literal paths so a missing file is reported as such.
func expandPatterns(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, arg := range args {
		if !doublestar.ValidatePathPattern(arg) {
			return nil, fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

func validateFile(path string) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}
	tree, err := content.Decode(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid JSON: %v\n", path, err)
		return false
	}

	problems := content.Validate(tree)
	if len(problems) == 0 {
		fmt.Printf("%s: ok (%d menu items, %d FAQ entries)\n", path, len(tree.MainMenu), len(tree.FAQ))
		return true
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, p)
	}
	return false
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
