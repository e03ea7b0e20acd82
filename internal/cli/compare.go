package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cipherlist/cipherlist/internal/reftool"
)

var compareCmd = &cobra.Command{
	Use:   "compare [expression]",
	Short: "Compare resolution with a local OpenSSL binary",
	Long: `Resolve an expression with the embedded catalog and with a local
"openssl ciphers" invocation, then report where the two disagree.

The openssl binary is taken from the configuration (reference.path) or
the --openssl-path flag. Suites only one side knows are listed; identical
results print "ok".

Examples:
  # Compare the default list
  cipherlist compare

  # Compare a custom expression against a specific binary
  cipherlist compare 'HIGH:!aNULL' --openssl-path /usr/local/bin/openssl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("openssl-path", "", "path to the openssl binary")
	compareCmd.Flags().Duration("timeout", 10*time.Second, "timeout for the openssl invocation")
}

func runCompare(cmd *cobra.Command, args []string) error {
	r, err := buildResolver()
	if err != nil {
		return err
	}

	c := GetConfig()
	path, _ := cmd.Flags().GetString("openssl-path")
	if path == "" {
		path = c.Reference.Path
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	expr := expressionArg(args)
	tool := reftool.New(path, nil)
	reference, err := tool.Ciphers(ctx, expr)
	if err != nil {
		return err
	}

	local := r.Aliases(expr)

	localSet := make(map[string]bool, len(local))
	for _, a := range local {
		localSet[a] = true
	}
	refSet := make(map[string]bool, len(reference))
	for _, a := range reference {
		refSet[a] = true
	}

	var diffs int
	for _, a := range local {
		if !refSet[a] {
			fmt.Fprintf(cmd.OutOrStdout(), "only local:   %s\n", a)
			diffs++
		}
	}
	for _, a := range reference {
		if !localSet[a] {
			fmt.Fprintf(cmd.OutOrStdout(), "only openssl: %s\n", a)
			diffs++
		}
	}

	if diffs == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}
	return fmt.Errorf("%d difference(s)", diffs)
}
