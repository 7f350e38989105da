package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/config"
)

// NewConfigSetCmd creates the config set command: assigns a dot-notation
// key to a value and persists it, grounded on the teacher's config_set.go.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Set a configuration value",
		Args:    cobra.ExactArgs(2),
		Example: "  prism config set execution.parallel 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return fmt.Errorf("setting %s: %w", args[0], err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration after set: %w", err)
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			cmd.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	}
}
