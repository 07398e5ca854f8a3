package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/country-codes/internal/countrycode"
)

var resolveStrict bool

var resolveCmd = &cobra.Command{
	Use:   "resolve CODE...",
	Short: "Print the display name for each code",
	Long:  "Resolves each code (trimmed and uppercased) to its display name. Unknown codes are printed as-is unless --strict is set, in which case the command fails.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict := resolveStrict || cfg.Lookup.Strict
		return resolveCodes(cmd.OutOrStdout(), countrycode.Default(), args, strict)
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "fail on unknown codes instead of echoing them")
	rootCmd.AddCommand(resolveCmd)
}

// resolveCodes writes one CODE<TAB>NAME line per input code.
func resolveCodes(out io.Writer, r *countrycode.Resolver, codes []string, strict bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, raw := range codes {
		code := countrycode.Normalize(raw)
		name, err := r.Resolve(code)
		if err != nil {
			if strict {
				_ = w.Flush()
				return eris.Wrap(err, "resolve")
			}
			zap.L().Warn("unknown code, showing raw value", zap.String("code", code))
			name = code
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", code, name)
	}

	return w.Flush()
}
