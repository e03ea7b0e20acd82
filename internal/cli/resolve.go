package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherlist/cipherlist/internal/catalog"
	"github.com/cipherlist/cipherlist/internal/provider"
	"github.com/cipherlist/cipherlist/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [expression]",
	Short: "Resolve a cipher-list expression into an ordered suite list",
	Long: `Resolve an OpenSSL cipher-list expression against the embedded catalog.

Without an expression the configured default (normally DEFAULT) is used.

Examples:
  # Resolve the default list
  cipherlist resolve

  # Resolve a custom expression
  cipherlist resolve 'HIGH:!aNULL:@STRENGTH'

  # Print only the aliases, one per line
  cipherlist resolve ALL --names

  # Emit the result as JSON
  cipherlist resolve DEFAULT -F json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("names", false, "print aliases only, one per line")
	resolveCmd.Flags().Bool("openssl", false, "print the list as a single colon-separated line")
}

// buildResolver assembles a resolver from the configuration: the embedded
// catalog, the builtin profiles, plus any configured profile files.
func buildResolver() (*resolver.Resolver, error) {
	c := GetConfig()
	log := newLogger(c)

	profiles := provider.Builtin()
	for _, path := range c.Providers.ProfileFiles {
		p, err := provider.Load(path)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return resolver.New(catalog.Default(), profiles, log), nil
}

// expressionArg returns the expression from args or the configured default.
func expressionArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return GetConfig().Resolve.DefaultExpression
}

func runResolve(cmd *cobra.Command, args []string) error {
	r, err := buildResolver()
	if err != nil {
		return err
	}

	expr := expressionArg(args)
	records := r.Resolve(expr)

	namesOnly, _ := cmd.Flags().GetBool("names")
	openssl, _ := cmd.Flags().GetBool("openssl")
	c := GetConfig()

	switch {
	case openssl:
		line := ""
		for i, rec := range records {
			if i > 0 {
				line += ":"
			}
			line += rec.Alias
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	case namesOnly:
		for _, rec := range records {
			fmt.Fprintln(cmd.OutOrStdout(), rec.Alias)
		}
		return nil
	default:
		return writeSuites(cmd, records, c.Output.DefaultFormat, c.Output.PrettyJSON)
	}
}
