package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cipherlist/cipherlist/internal/provider"
)

var crossrefCmd = &cobra.Command{
	Use:   "crossref [expression]",
	Short: "Cross-reference resolved suites with provider implementations",
	Long: `Resolve an expression and map every suite onto the known TLS provider
implementations. Each suite gets one of three outcomes per provider: the
standard name it maps to, "unsupported" when the provider documents the
suite as absent, or "unexpected" when the embedded data covers neither.

Examples:
  # Cross-reference the default list
  cipherlist crossref

  # Cross-reference against a single provider
  cipherlist crossref ALL --provider Oracle

  # Show only suites with problems
  cipherlist crossref ALL --unexpected`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrossref,
}

func init() {
	crossrefCmd.Flags().StringP("provider", "p", "", "restrict output to one provider")
	crossrefCmd.Flags().Bool("unexpected", false, "show only suites with an unexpected outcome")
}

func runCrossref(cmd *cobra.Command, args []string) error {
	r, err := buildResolver()
	if err != nil {
		return err
	}

	providerName, _ := cmd.Flags().GetString("provider")
	unexpectedOnly, _ := cmd.Flags().GetBool("unexpected")

	entries := r.CrossReference(expressionArg(args))

	if providerName != "" {
		found := false
		for i := range entries {
			kept := entries[i].Mappings[:0]
			for _, m := range entries[i].Mappings {
				if strings.EqualFold(m.Provider, providerName) {
					kept = append(kept, m)
					found = true
				}
			}
			entries[i].Mappings = kept
		}
		if !found {
			return fmt.Errorf("unknown provider %q", providerName)
		}
	}

	if unexpectedOnly {
		kept := entries[:0]
		for _, e := range entries {
			for _, m := range e.Mappings {
				if m.Outcome == provider.Unexpected {
					kept = append(kept, e)
					break
				}
			}
		}
		entries = kept
	}

	c := GetConfig()
	return writeEntries(cmd, entries, c.Output.DefaultFormat, c.Output.PrettyJSON)
}
