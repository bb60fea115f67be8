package cli

import (
	"github.com/spf13/cobra"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "manage workspace containers",
}

var spaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "list every space the session can see",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Spaces())
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

var spaceGetCmd = &cobra.Command{
	Use:   "get NAME_OR_ID",
	Short: "fetch one space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		space, err := c.GetSpace(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, space)
	},
}

var (
	spaceCreateDescription string
)

var spaceCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "create a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		space, err := c.NewSpace(args[0]).Description(spaceCreateDescription).Create(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, space)
	},
}

var (
	spaceUpdateName        string
	spaceUpdateDescription string
)

var spaceUpdateCmd = &cobra.Command{
	Use:   "update NAME_OR_ID",
	Short: "rename or re-describe a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.UpdateSpace(args[0])
		if cmd.Flags().Changed("name") {
			b = b.Name(spaceUpdateName)
		}
		if cmd.Flags().Changed("description") {
			b = b.Description(spaceUpdateDescription)
		}
		space, err := b.Update(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, space)
	},
}

var spaceCountArchivedCmd = &cobra.Command{
	Use:   "count-archived SPACE",
	Short: "count archived objects in a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		n, err := c.CountArchived(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, map[string]any{"count": n})
	},
}

var spaceDeleteArchivedCmd = &cobra.Command{
	Use:   "delete-archived SPACE",
	Short: "delete every archived object in a space; partial failure is reported, not fatal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		result, err := c.DeleteAllArchived(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, result)
	},
}

func init() {
	addListFlags(spaceListCmd)
	addOutputFlag(spaceListCmd)
	addOutputFlag(spaceGetCmd)
	addOutputFlag(spaceCreateCmd)
	addOutputFlag(spaceUpdateCmd)
	addOutputFlag(spaceCountArchivedCmd)
	addOutputFlag(spaceDeleteArchivedCmd)

	spaceCreateCmd.Flags().StringVar(&spaceCreateDescription, "description", "", "space description")
	spaceUpdateCmd.Flags().StringVar(&spaceUpdateName, "name", "", "new name")
	spaceUpdateCmd.Flags().StringVar(&spaceUpdateDescription, "description", "", "new description")

	spaceCmd.AddCommand(spaceListCmd, spaceGetCmd, spaceCreateCmd, spaceUpdateCmd, spaceCountArchivedCmd, spaceDeleteArchivedCmd)
}
