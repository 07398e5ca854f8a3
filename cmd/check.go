package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/country-codes/internal/countrycode"
	"github.com/sells-group/country-codes/internal/tabular"
)

var (
	checkColumn   int
	checkSheet    string
	checkSkipRows int
	checkExact    bool
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Report codes in a CSV or XLSX column that are not in the table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := tabular.ReadCodes(args[0], tabular.ReadOptions{
			Column:    checkColumn,
			SheetName: checkSheet,
			SkipRows:  checkSkipRows,
		})
		if err != nil {
			return eris.Wrap(err, "check")
		}

		unknown := checkCodes(cmd.OutOrStdout(), countrycode.Default(), codes, !checkExact)
		zap.L().Info("check complete",
			zap.String("file", args[0]),
			zap.Int("codes", len(codes)),
			zap.Int("unknown", unknown),
		)
		if unknown > 0 {
			return eris.Errorf("check: %d of %d codes unknown", unknown, len(codes))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVar(&checkColumn, "column", 0, "zero-based column holding codes")
	checkCmd.Flags().StringVar(&checkSheet, "sheet", "", "xlsx sheet name (default first sheet)")
	checkCmd.Flags().IntVar(&checkSkipRows, "skip-rows", 0, "header rows to skip")
	checkCmd.Flags().BoolVar(&checkExact, "exact", false, "match codes exactly, without trimming or uppercasing")
	rootCmd.AddCommand(checkCmd)
}

// checkCodes prints each unknown code with its 1-based position and a
// summary line, returning the number of unknown codes.
func checkCodes(out io.Writer, r *countrycode.Resolver, codes []string, normalize bool) int {
	unknown := 0
	for i, code := range codes {
		if normalize {
			code = countrycode.Normalize(code)
		}
		if !r.Has(code) {
			unknown++
			_, _ = fmt.Fprintf(out, "unknown code %q at item %d\n", code, i+1)
		}
	}
	_, _ = fmt.Fprintf(out, "%d codes checked, %d unknown\n", len(codes), unknown)
	return unknown
}
