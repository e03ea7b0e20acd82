package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/cipherlist/cipherlist/internal/model"
	"github.com/cipherlist/cipherlist/internal/resolver"
)

// suiteRow is the serializable view of one cipher record.
type suiteRow struct {
	Alias         string   `json:"alias" yaml:"alias"`
	StandardNames []string `json:"standardNames,omitempty" yaml:"standardNames,omitempty"`
	Kx            string   `json:"kx" yaml:"kx"`
	Au            string   `json:"au" yaml:"au"`
	Enc           string   `json:"enc" yaml:"enc"`
	Mac           string   `json:"mac" yaml:"mac"`
	Protocols     string   `json:"protocols" yaml:"protocols"`
	Export        bool     `json:"export,omitempty" yaml:"export,omitempty"`
	Strength      string   `json:"strength" yaml:"strength"`
}

func newSuiteRow(r *model.CipherRecord) suiteRow {
	return suiteRow{
		Alias:         r.Alias,
		StandardNames: r.StandardNames,
		Kx:            r.Kx.String(),
		Au:            r.Au.String(),
		Enc:           r.Enc.String(),
		Mac:           r.Mac.String(),
		Protocols:     r.Protocols.String(),
		Export:        r.Export,
		Strength:      r.Strength.String(),
	}
}

// writeSuites renders a resolved suite list in the configured format.
func writeSuites(cmd *cobra.Command, records []*model.CipherRecord, format string, pretty bool) error {
	switch format {
	case "json":
		rows := make([]suiteRow, len(records))
		for i, r := range records {
			rows[i] = newSuiteRow(r)
		}
		return writeJSON(cmd, rows, pretty)
	case "yaml":
		rows := make([]suiteRow, len(records))
		for i, r := range records {
			rows[i] = newSuiteRow(r)
		}
		return writeYAML(cmd, rows)
	case "table", "":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ALIAS\tKX\tAU\tENC\tMAC\tPROTO\tSTRENGTH")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Alias, r.Kx, r.Au, r.Enc, r.Mac, r.Protocols, r.Strength)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// crossrefRow is the serializable view of one cross-reference entry.
type crossrefRow struct {
	Alias     string            `json:"alias" yaml:"alias"`
	Providers map[string]string `json:"providers" yaml:"providers"`
}

func newCrossrefRow(e resolver.Entry) crossrefRow {
	row := crossrefRow{
		Alias:     e.Record.Alias,
		Providers: make(map[string]string, len(e.Mappings)),
	}
	for _, m := range e.Mappings {
		if m.StandardName != "" {
			row.Providers[m.Provider] = m.StandardName
		} else {
			row.Providers[m.Provider] = m.Outcome.String()
		}
	}
	return row
}

// writeEntries renders cross-reference results in the configured format.
func writeEntries(cmd *cobra.Command, entries []resolver.Entry, format string, pretty bool) error {
	switch format {
	case "json":
		rows := make([]crossrefRow, len(entries))
		for i, e := range entries {
			rows[i] = newCrossrefRow(e)
		}
		return writeJSON(cmd, rows, pretty)
	case "yaml":
		rows := make([]crossrefRow, len(entries))
		for i, e := range entries {
			rows[i] = newCrossrefRow(e)
		}
		return writeYAML(cmd, rows)
	case "table", "":
		var providers []string
		if len(entries) > 0 {
			for _, m := range entries[0].Mappings {
				providers = append(providers, m.Provider)
			}
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "ALIAS\t%s\n", strings.Join(upperAll(providers), "\t"))
		for _, e := range entries {
			cells := make([]string, len(e.Mappings))
			for i, m := range e.Mappings {
				if m.StandardName != "" {
					cells[i] = m.StandardName
				} else {
					cells[i] = m.Outcome.String()
				}
			}
			fmt.Fprintf(w, "%s\t%s\n", e.Record.Alias, strings.Join(cells, "\t"))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func upperAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}

func writeJSON(cmd *cobra.Command, v any, pretty bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeYAML(cmd *cobra.Command, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
