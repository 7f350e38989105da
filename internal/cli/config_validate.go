package cli

import (
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/config"
)

// NewConfigValidateCmd creates the config validate command: loads the
// configuration and reports whether it satisfies the invariants
// config.Config.Validate enforces, grounded on the teacher's
// config_validate.go.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   "Validate the current configuration",
		Example: "  prism config validate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if err := cfg.Validate(); err != nil {
				cmd.Printf("configuration invalid: %v\n", err)
				return &exitError{code: exitCodeFailures, message: "configuration invalid"}
			}
			cmd.Println("configuration valid")
			return nil
		},
	}
}
