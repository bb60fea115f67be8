// Package cli implements the anytype-go command-line surface:
// auth, the per-resource entity commands, search, list (views), and
// config, each a thin cobra wrapper around the client package. Output
// rendering, flag parsing, and client construction are centralized here
// so every subcommand file only deals with its own resource.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anytype-sdk/anytype-go/client"
	anytypeconfig "github.com/anytype-sdk/anytype-go/config"
	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/filter"
	"github.com/anytype-sdk/anytype-go/transport"
)

// newClient builds a client.Client from the resolved viper config, using
// a file-backed keystore rooted at the configured path.
func newClient() (*client.Client, error) {
	cfg, err := anytypeconfig.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	path := cfg.KeystorePath
	if strings.HasPrefix(path, "~/") {
		home, herr := os.UserHomeDir()
		if herr == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	ks := transport.NewFileKeyStore(path)
	return client.New(cfg.Transport(), ks)
}

// addListFlags registers the --limit/--offset/--all/--filter/--sort/
// --desc flags shared by every list-shaped subcommand.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "page size (default 100)")
	cmd.Flags().Int("offset", 0, "starting offset")
	cmd.Flags().Bool("all", false, "collect every page instead of one")
	cmd.Flags().StringArray("filter", nil, "KEY[COND]=VALUE, repeatable")
	cmd.Flags().String("sort", "", "property key to sort by")
	cmd.Flags().Bool("desc", false, "sort descending")
}

// addOutputFlag registers the --output flag every command accepts.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().String("output", "", "json|pretty|table|quiet (default from config)")
}

// parseFilterFlags parses every --filter value via filter.Parse.
func parseFilterFlags(cmd *cobra.Command) ([]filter.Filter, error) {
	raw, _ := cmd.Flags().GetStringArray("filter")
	out := make([]filter.Filter, 0, len(raw))
	for _, s := range raw {
		f, err := filter.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// applyListFlags wires the common list flags onto b and returns it,
// ready for List(ctx) or CollectAll.
func applyListFlags[T any](cmd *cobra.Command, b *client.ListBuilder[T]) (*client.ListBuilder[T], error) {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 {
		b = b.Limit(limit)
	}
	offset, _ := cmd.Flags().GetInt("offset")
	if offset > 0 {
		b = b.Offset(offset)
	}
	filters, err := parseFilterFlags(cmd)
	if err != nil {
		return nil, err
	}
	b = b.Filters(filters)

	sortKey, _ := cmd.Flags().GetString("sort")
	if sortKey != "" {
		desc, _ := cmd.Flags().GetBool("desc")
		if desc {
			b = b.SortDesc(sortKey)
		} else {
			b = b.SortAsc(sortKey)
		}
	}
	return b, nil
}

// wantAll reports whether --all was passed.
func wantAll(cmd *cobra.Command) bool {
	all, _ := cmd.Flags().GetBool("all")
	return all
}

// outputFormat resolves --output, falling back to the configured
// default.
func outputFormat(cmd *cobra.Command) anytypeconfig.Output {
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		return anytypeconfig.Output(v)
	}
	cfg, err := anytypeconfig.Load(viper.GetViper())
	if err != nil {
		return anytypeconfig.OutputPretty
	}
	return cfg.Output
}

// render writes v to stdout in the format selected by --output.
func render(cmd *cobra.Command, v any) error {
	switch outputFormat(cmd) {
	case anytypeconfig.OutputQuiet:
		return nil
	case anytypeconfig.OutputJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case anytypeconfig.OutputTable:
		return renderTable(v)
	default: // pretty
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}
}

// renderTable renders a slice of records as a tab-aligned table by
// round-tripping through JSON to a list of flat maps; scalars render as
// a single-row, two-column table instead.
func renderTable(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		var one map[string]any
		if uerr := json.Unmarshal(raw, &one); uerr != nil {
			fmt.Println(string(raw))
			return nil
		}
		rows = []map[string]any{one}
	}
	if len(rows) == 0 {
		fmt.Println("(no results)")
		return nil
	}

	cols := mapKeys(rows[0])
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	for _, row := range rows {
		vals := make([]string, len(cols))
		for i, c := range cols {
			vals[i] = fmt.Sprintf("%v", row[c])
		}
		fmt.Fprintln(w, strings.Join(vals, "\t"))
	}
	return w.Flush()
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// exitWithError prints err's actionable line and exits with the code the
// error taxonomy assigns it.
func exitWithError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(errs.ExitCode(err))
}
