package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var hoursCmd = LeafCommand{
	Use:   "hours",
	Short: "Resolve the hours tags of a route",
	StrFlags: withTagFlags(
		StringFlag{Name: "output", Usage: "output format (json, yaml)", Default: "json"},
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := readRoute(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return runHours(cmd, newConverter(cmd), r.Tags, output)
	},
}.Build()

func runHours(cmd *cobra.Command, conv *interval.Converter, tags map[string]string, output string) error {
	obj := conv.TagsToHoursObject(tags)
	w := cmd.OutOrStdout()

	switch output {
	case "json":
		return writeJSON(w, obj)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected json or yaml)", output)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, string(data))
	return nil
}
