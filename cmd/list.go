package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/country-codes/internal/countrycode"
	"github.com/sells-group/country-codes/internal/tabular"
)

var (
	listKind   string
	listSort   string
	listFormat string
	listOut    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List or export the code table",
	Long:  "Lists every code and name, optionally filtered by kind and sorted by code or name. Output formats: table, json, yaml, csv, xlsx (xlsx requires --out).",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := selectEntries(countrycode.Default(), listKind, listSort)
		if err != nil {
			return err
		}

		if listOut == "" {
			return writeEntries(cmd.OutOrStdout(), entries, listFormat, "")
		}
		if err := exportEntries(entries, listFormat, listOut); err != nil {
			return err
		}
		zap.L().Info("table exported",
			zap.String("path", listOut),
			zap.String("format", listFormat),
			zap.Int("entries", len(entries)),
		)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "only list entries of this kind (country or aggregate)")
	listCmd.Flags().StringVar(&listSort, "sort", "table", "ordering: table, code, or name")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table, json, yaml, csv, xlsx")
	listCmd.Flags().StringVar(&listOut, "out", "", "write to this file instead of stdout")
	rootCmd.AddCommand(listCmd)
}

// selectEntries applies the kind filter and sort order.
func selectEntries(r *countrycode.Resolver, kind, sortBy string) ([]countrycode.Entry, error) {
	var entries []countrycode.Entry
	if kind == "" {
		entries = r.All()
	} else {
		k, err := countrycode.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		entries = r.Filter(k)
	}

	switch sortBy {
	case "", "table":
	case "code":
		slices.SortStableFunc(entries, func(a, b countrycode.Entry) int {
			return strings.Compare(a.Code, b.Code)
		})
	case "name":
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(entries, func(a, b countrycode.Entry) int {
			return c.CompareString(a.Name, b.Name)
		})
	default:
		return nil, eris.Errorf("list: unknown sort %q (want table, code, or name)", sortBy)
	}

	return entries, nil
}

func exportEntries(entries []countrycode.Entry, format, path string) error {
	if format == "xlsx" {
		return tabular.WriteXLSX(path, entries)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "list: create output")
	}
	if err := writeEntries(f, entries, format, path); err != nil {
		_ = f.Close()
		return err
	}
	return eris.Wrap(f.Close(), "list: close output")
}

// writeEntries renders entries in the requested format. path is only used by
// xlsx, which cannot stream to a writer.
func writeEntries(out io.Writer, entries []countrycode.Entry, format, path string) error {
	switch format {
	case "", "table":
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "CODE\tNAME\tKIND")
		_, _ = fmt.Fprintln(w, "----\t----\t----")
		for _, e := range entries {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.Code, e.Name, e.Kind)
		}
		return w.Flush()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(entries), "list: encode json")
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return eris.Wrap(err, "list: encode yaml")
		}
		return eris.Wrap(enc.Close(), "list: close yaml encoder")
	case "csv":
		return tabular.WriteCSV(out, entries)
	case "xlsx":
		if path == "" {
			return eris.New("list: xlsx output requires --out")
		}
		return tabular.WriteXLSX(path, entries)
	default:
		return eris.Errorf("list: unknown format %q", format)
	}
}
