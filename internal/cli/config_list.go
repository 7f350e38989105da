package cli

import (
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schemaprism/prism/internal/config"
)

// NewConfigListCmd creates the config list command: prints the full
// configuration as YAML, grounded on the teacher's config_list.go.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Print the full configuration",
		Example: "  prism config list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			sections := cfg.List()

			names := make([]string, 0, len(sections))
			for name := range sections {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				encoded, err := yaml.Marshal(map[string]any{name: sections[name]})
				if err != nil {
					return err
				}
				cmd.Print(string(encoded))
			}
			return nil
		},
	}
}
