package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func blocksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "list the registered block names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			registry, err := newRegistry(cfg, logger)
			if err != nil {
				return err
			}
			for _, name := range registry.Names() {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
