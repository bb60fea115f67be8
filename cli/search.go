package cli

import (
	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/client"
	"github.com/anytype-sdk/anytype-go/filter"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "full-text and structured search",
}

var (
	searchText   string
	searchTypes  []string
	searchOffset int
	searchLimit  int
)

func registerSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&searchText, "text", "", "free-text query")
	cmd.Flags().StringArrayVar(&searchTypes, "type", nil, "restrict to a type key, repeatable")
	cmd.Flags().StringArray("filter", nil, "KEY[COND]=VALUE, repeatable (implicit AND)")
	cmd.Flags().Int("offset", 0, "starting offset")
	cmd.Flags().Int("limit", 0, "page size (default 100)")
	cmd.Flags().Bool("all", false, "collect every page instead of one")
	addOutputFlag(cmd)
}

func runSearch(cmd *cobra.Command, b *client.SearchBuilder) error {
	if searchText != "" {
		b = b.Text(searchText)
	}
	if len(searchTypes) > 0 {
		b = b.Types(searchTypes)
	}
	filters, err := parseFilterFlags(cmd)
	if err != nil {
		return err
	}
	if len(filters) > 0 {
		b = b.Filters(filter.ToExprAND(filters))
	}
	offset, _ := cmd.Flags().GetInt("offset")
	if offset > 0 {
		b = b.Offset(offset)
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 {
		b = b.Limit(limit)
	}

	page, err := b.Search(cmd.Context())
	if err != nil {
		return err
	}
	if wantAll(cmd) {
		items, err := page.CollectAll(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, items)
	}
	return render(cmd, page.Items)
}

var searchGlobalCmd = &cobra.Command{
	Use:   "global",
	Short: "search across every space the session can see",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()
		return runSearch(cmd, c.SearchGlobal())
	},
}

var searchInCmd = &cobra.Command{
	Use:   "in SPACE",
	Short: "search within a single space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()
		return runSearch(cmd, c.SearchIn(args[0]))
	},
}

func init() {
	registerSearchFlags(searchGlobalCmd)
	registerSearchFlags(searchInCmd)
	searchCmd.AddCommand(searchGlobalCmd, searchInCmd)
}
