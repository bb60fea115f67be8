package cli

import (
	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/model"
)

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "manage properties within a space",
}

var propertyListCmd = &cobra.Command{
	Use:   "list SPACE",
	Short: "list the properties defined in a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Properties(args[0]))
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

var propertyGetCmd = &cobra.Command{
	Use:   "get SPACE KEY_OR_ID",
	Short: "fetch one property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		p, err := c.GetProperty(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, p)
	},
}

var propertyLookupCmd = &cobra.Command{
	Use:   "lookup SPACE KEY",
	Short: "resolve a property by its stable key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		p, err := c.LookupPropertyByKey(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, p)
	},
}

var propertyCreateKey string

var propertyCreateCmd = &cobra.Command{
	Use:   "create SPACE NAME FORMAT",
	Short: "create a property; FORMAT is one of text|number|date|checkbox|select|multi_select|file|object|email|url|phone",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		p, err := c.NewProperty(args[0], args[1], model.PropertyFormat(args[2])).
			Key(propertyCreateKey).
			Create(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, p)
	},
}

var propertyUpdateName string

var propertyUpdateCmd = &cobra.Command{
	Use:   "update SPACE KEY_OR_ID",
	Short: "rename a property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.UpdateProperty(args[0], args[1])
		if cmd.Flags().Changed("name") {
			b = b.Name(propertyUpdateName)
		}
		p, err := b.Update(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, p)
	},
}

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete SPACE KEY_OR_ID",
	Short: "delete a property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		p, err := c.DeleteProperty(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, p)
	},
}

func init() {
	addListFlags(propertyListCmd)
	addOutputFlag(propertyListCmd)
	addOutputFlag(propertyGetCmd)
	addOutputFlag(propertyLookupCmd)
	addOutputFlag(propertyCreateCmd)
	addOutputFlag(propertyUpdateCmd)
	addOutputFlag(propertyDeleteCmd)

	propertyCreateCmd.Flags().StringVar(&propertyCreateKey, "key", "", "stable key")
	propertyUpdateCmd.Flags().StringVar(&propertyUpdateName, "name", "", "new name")

	propertyCmd.AddCommand(propertyListCmd, propertyGetCmd, propertyLookupCmd, propertyCreateCmd, propertyUpdateCmd, propertyDeleteCmd)
}
