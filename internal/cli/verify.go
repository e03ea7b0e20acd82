package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cipherlist/cipherlist/internal/reftool"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the embedded catalog and profiles for defects",
	Long: `Run the data-consistency checks over the embedded catalog, the IANA
registry snapshot and the provider profiles. Any finding is a defect in
the embedded data, so the command exits non-zero when problems are found.

Checks:
  - every standard name is IANA-registered or a documented legacy name
  - every reference-build suite is mapped or documented per provider
  - no suite is both mapped and documented unsupported
  - expression evaluation is deterministic and duplicate-free

With --reference the catalog is additionally compared against the local
openssl binary's ALL:eNULL output.

Examples:
  cipherlist verify
  cipherlist verify --reference`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().Bool("reference", false, "also compare the catalog against the local openssl binary")
	verifyCmd.Flags().Duration("timeout", 10*time.Second, "timeout for the openssl invocation with --reference")
}

func runVerify(cmd *cobra.Command, args []string) error {
	r, err := buildResolver()
	if err != nil {
		return err
	}

	problems := r.Verify()

	if useReference, _ := cmd.Flags().GetBool("reference"); useReference {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		tool := reftool.New(GetConfig().Reference.Path, nil)
		availability, err := r.VerifyAvailability(ctx, tool)
		if err != nil {
			return err
		}
		problems = append(problems, availability...)
	}

	if len(problems) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return fmt.Errorf("%d problem(s) found", len(problems))
}
