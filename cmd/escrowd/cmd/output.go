package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagOutput, "o", OutputJSON, "Output format (json|yaml)")
}

// printOutput writes obj to stdout as JSON or, with --output yaml, as the
// YAML rendering of that JSON.
func printOutput(cmd *cobra.Command, obj interface{}) error {
	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString(FlagOutput)

	switch format {
	case "", OutputJSON:
	case OutputYAML:
		out, err = yaml.JSONToYAML(out)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid output format (%s)", format) // nolint: goerr113
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
