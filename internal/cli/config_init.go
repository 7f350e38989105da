package cli

import (
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/config"
)

// NewConfigInitCmd creates the config init command: writes the default
// configuration to disk, grounded on the teacher's config_init.go.
func NewConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Write the default configuration file",
		Example: "  prism config init",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if err := cfg.Save(); err != nil {
				return err
			}
			cmd.Println("configuration initialized")
			return nil
		},
	}
}
