package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schemaprism/prism/internal/config"
)

// NewConfigGetCmd creates the config get command: reads back a single
// dot-notation key. The rewritten Config has no Get method of its own, so
// this round-trips the config through YAML into a generic map and walks
// it section-by-section, mirroring the dotted addressing Set uses.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print a configuration value",
		Args:    cobra.ExactArgs(1),
		Example: "  prism config get adapter.name",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			value, err := getConfigValue(cfg, args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

func getConfigValue(cfg *config.Config, key string) (string, error) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid key format: %q (expected section.field)", key)
	}

	encoded, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling configuration: %w", err)
	}
	var sections map[string]map[string]any
	if err := yaml.Unmarshal(encoded, &sections); err != nil {
		return "", fmt.Errorf("decoding configuration: %w", err)
	}

	section, ok := sections[parts[0]]
	if !ok {
		return "", fmt.Errorf("unknown configuration section: %s", parts[0])
	}
	value, ok := section[parts[1]]
	if !ok {
		return "", fmt.Errorf("unknown configuration field: %s", key)
	}
	return fmt.Sprintf("%v", value), nil
}
