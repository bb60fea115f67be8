package cli

import (
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "inspect space membership (read-only; invites and roles are server-side)",
}

var memberListCmd = &cobra.Command{
	Use:   "list SPACE",
	Short: "list the members of a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Members(args[0]))
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

var memberGetCmd = &cobra.Command{
	Use:   "get SPACE ID",
	Short: "fetch one member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		m, err := c.GetMember(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, m)
	},
}

func init() {
	addListFlags(memberListCmd)
	addOutputFlag(memberListCmd)
	addOutputFlag(memberGetCmd)

	memberCmd.AddCommand(memberListCmd, memberGetCmd)
}
