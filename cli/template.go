package cli

import (
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "inspect template objects for a type (list/get only)",
}

var templateListCmd = &cobra.Command{
	Use:   "list SPACE TYPE",
	Short: "list the templates defined for a type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Templates(args[0], args[1]))
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

var templateGetCmd = &cobra.Command{
	Use:   "get SPACE TYPE ID",
	Short: "fetch one template",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		t, err := c.GetTemplate(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return render(cmd, t)
	},
}

func init() {
	addListFlags(templateListCmd)
	addOutputFlag(templateListCmd)
	addOutputFlag(templateGetCmd)

	templateCmd.AddCommand(templateListCmd, templateGetCmd)
}
