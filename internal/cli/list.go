package cli

import (
	"github.com/spf13/cobra"

	"github.com/cipherlist/cipherlist/internal/catalog"
	"github.com/cipherlist/cipherlist/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Dump the embedded cipher-suite catalog",
	Long: `Print every suite the catalog knows, in declaration order. The list
includes suites that never appear in resolved output, such as the eNULL
suites DEFAULT removes.

Examples:
  # Full catalog as a table
  cipherlist list

  # Catalog as JSON
  cipherlist list -F json

  # Only export-grade suites
  cipherlist list --export`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().Bool("export", false, "show only export-grade suites")
	listCmd.Flags().String("protocol", "", "show only suites of a protocol (SSLv2, SSLv3, TLSv1, TLSv1.1, TLSv1.2)")
}

func runList(cmd *cobra.Command, args []string) error {
	exportOnly, _ := cmd.Flags().GetBool("export")
	protoName, _ := cmd.Flags().GetString("protocol")

	var records []*model.CipherRecord
	for _, r := range catalog.Default().All() {
		if exportOnly && !r.Export {
			continue
		}
		if protoName != "" && !hasProtocol(r, protoName) {
			continue
		}
		records = append(records, r)
	}

	c := GetConfig()
	return writeSuites(cmd, records, c.Output.DefaultFormat, c.Output.PrettyJSON)
}

func hasProtocol(r *model.CipherRecord, name string) bool {
	for p := model.SSLv2; p <= model.TLSv12; p++ {
		if p.String() == name {
			return r.Protocols.Contains(p)
		}
	}
	return false
}
