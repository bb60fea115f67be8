package cli

import (
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "manage tags on a select or multi_select property",
}

var tagListCmd = &cobra.Command{
	Use:   "list SPACE PROPERTY",
	Short: "list the tags of a property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Tags(args[0], args[1]))
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

var tagGetCmd = &cobra.Command{
	Use:   "get SPACE PROPERTY TAG",
	Short: "fetch one tag",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.GetTag(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var tagCreateCmd = &cobra.Command{
	Use:   "create SPACE PROPERTY NAME COLOR",
	Short: "create a tag on a select or multi_select property",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.NewTag(args[0], args[1], args[2], args[3]).Create(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var (
	tagUpdateName  string
	tagUpdateColor string
)

var tagUpdateCmd = &cobra.Command{
	Use:   "update SPACE PROPERTY TAG",
	Short: "rename or recolor a tag",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.UpdateTag(args[0], args[1], args[2])
		if cmd.Flags().Changed("name") {
			b = b.Name(tagUpdateName)
		}
		if cmd.Flags().Changed("color") {
			b = b.Color(tagUpdateColor)
		}
		t, err := b.Update(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete SPACE PROPERTY TAG",
	Short: "delete a tag",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.DeleteTag(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

func init() {
	addListFlags(tagListCmd)
	addOutputFlag(tagListCmd)
	addOutputFlag(tagGetCmd)
	addOutputFlag(tagCreateCmd)
	addOutputFlag(tagUpdateCmd)
	addOutputFlag(tagDeleteCmd)

	tagUpdateCmd.Flags().StringVar(&tagUpdateName, "name", "", "new name")
	tagUpdateCmd.Flags().StringVar(&tagUpdateColor, "color", "", "new color")

	tagCmd.AddCommand(tagListCmd, tagGetCmd, tagCreateCmd, tagUpdateCmd, tagDeleteCmd)
}
