package cli

import (
	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/model"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "manage object types within a space",
}

var typeListCmd = &cobra.Command{
	Use:   "list SPACE",
	Short: "list the types defined in a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Types(args[0]))
		if err != nil {
			return err
		}
		page, err := b.List(cmd.Context())
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
	},
}

var typeGetCmd = &cobra.Command{
	Use:   "get SPACE KEY_OR_ID",
	Short: "fetch one type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.GetType(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var typeLookupCmd = &cobra.Command{
	Use:   "lookup SPACE KEY",
	Short: "resolve a type by its stable key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.LookupTypeByKey(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var (
	typeCreateKey    string
	typeCreatePlural string
	typeCreateLayout string
	typeCreateIcon   string
)

var typeCreateCmd = &cobra.Command{
	Use:   "create SPACE NAME",
	Short: "create a type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.NewType(args[0], args[1]).
			Key(typeCreateKey).
			Plural(typeCreatePlural).
			Icon(typeCreateIcon)
		if typeCreateLayout != "" {
			b = b.Layout(model.Layout(typeCreateLayout))
		}
		t, err := b.Create(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var (
	typeUpdateName   string
	typeUpdatePlural string
	typeUpdateIcon   string
)

var typeUpdateCmd = &cobra.Command{
	Use:   "update SPACE KEY_OR_ID",
	Short: "update a type's name, plural, or icon",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.UpdateType(args[0], args[1])
		if cmd.Flags().Changed("name") {
			b = b.Name(typeUpdateName)
		}
		if cmd.Flags().Changed("plural") {
			b = b.Plural(typeUpdatePlural)
		}
		if cmd.Flags().Changed("icon") {
			b = b.Icon(typeUpdateIcon)
		}
		t, err := b.Update(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var typeDeleteCmd = &cobra.Command{
	Use:   "delete SPACE KEY_OR_ID",
	Short: "delete a type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.DeleteType(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

func init() {
	addListFlags(typeListCmd)
	addOutputFlag(typeListCmd)
	addOutputFlag(typeGetCmd)
	addOutputFlag(typeLookupCmd)
	addOutputFlag(typeCreateCmd)
	addOutputFlag(typeUpdateCmd)
	addOutputFlag(typeDeleteCmd)

	typeCreateCmd.Flags().StringVar(&typeCreateKey, "key", "", "stable key")
	typeCreateCmd.Flags().StringVar(&typeCreatePlural, "plural", "", "plural name")
	typeCreateCmd.Flags().StringVar(&typeCreateLayout, "layout", "", "layout: basic|profile|action|note|bookmark|set|collection|participant")
	typeCreateCmd.Flags().StringVar(&typeCreateIcon, "icon", "", "icon")

	typeUpdateCmd.Flags().StringVar(&typeUpdateName, "name", "", "new name")
	typeUpdateCmd.Flags().StringVar(&typeUpdatePlural, "plural", "", "new plural name")
	typeUpdateCmd.Flags().StringVar(&typeUpdateIcon, "icon", "", "new icon")

	typeCmd.AddCommand(typeListCmd, typeGetCmd, typeLookupCmd, typeCreateCmd, typeUpdateCmd, typeDeleteCmd)
}
