package main

import (
	"encoding/json"
	"fmt"

	"placement-service/internal/fitcheck/rules"

	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the loaded rule configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath, _ := cmd.Flags().GetString("rules")

			store, err := rules.Load(rulesPath)
			if err != nil {
				return fmt.Errorf("load rules: %w", err)
			}

			output, err := json.MarshalIndent(store.Raw(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal rules: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}
}
