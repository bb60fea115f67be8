package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/client"
	"github.com/anytype-sdk/anytype-go/verify"
)

var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "manage objects within a space",
}

var objectListCmd = &cobra.Command{
	Use:   "list SPACE",
	Short: "list the objects in a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.Objects(args[0]))
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

var objectGetCmd = &cobra.Command{
	Use:   "get SPACE ID",
	Short: "fetch one object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		o, err := c.GetObject(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, o)
	},
}

var (
	objectName   string
	objectBody   string
	objectText   []string
	objectNumber []string
	objectCheck  []string
	objectSelect []string
	objectMulti  []string
	objectVerify string
)

// applySetFlags applies the repeatable typed-property flags to a
// creation or update builder, both of which expose the same Set*
// methods, via the setter closure.
func applySetFlags(set func(kind, key, value string) error) error {
	for _, kv := range objectText {
		k, v, err := splitKV(kv)
		if err != nil {
			return err
		}
		if err := set("text", k, v); err != nil {
			return err
		}
	}
	for _, kv := range objectNumber {
		k, v, err := splitKV(kv)
		if err != nil {
			return err
		}
		if err := set("number", k, v); err != nil {
			return err
		}
	}
	for _, kv := range objectCheck {
		k, v, err := splitKV(kv)
		if err != nil {
			return err
		}
		if err := set("checkbox", k, v); err != nil {
			return err
		}
	}
	for _, kv := range objectSelect {
		k, v, err := splitKV(kv)
		if err != nil {
			return err
		}
		if err := set("select", k, v); err != nil {
			return err
		}
	}
	for _, kv := range objectMulti {
		k, v, err := splitKV(kv)
		if err != nil {
			return err
		}
		if err := set("multi_select", k, v); err != nil {
			return err
		}
	}
	return nil
}

func splitKV(s string) (string, string, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected KEY=VALUE, got %q", s)
	}
	return parts[0], parts[1], nil
}

func verifyPolicyFlag(v string) verify.Policy {
	switch v {
	case "enabled":
		return verify.PolicyEnabled
	case "disabled":
		return verify.PolicyDisabled
	default:
		return verify.PolicyDefault
	}
}

var objectCreateCmd = &cobra.Command{
	Use:   "create SPACE TYPE",
	Short: "create an object of a given type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.NewObject(args[0], args[1]).Name(objectName).Body(objectBody)
		err = applySetFlags(func(kind, key, value string) error {
			switch kind {
			case "text":
				b = b.SetText(key, value)
			case "number":
				n, perr := strconv.ParseFloat(value, 64)
				if perr != nil {
					return perr
				}
				b = b.SetNumber(key, n)
			case "checkbox":
				v, perr := strconv.ParseBool(value)
				if perr != nil {
					return perr
				}
				b = b.SetCheckbox(key, v)
			case "select":
				b = b.SetSelect(key, value)
			case "multi_select":
				b = b.SetMultiSelect(key, strings.Split(value, ","))
			}
			return nil
		})
		if err != nil {
			return err
		}
		if objectVerify != "" {
			b = b.EnsureAvailableWith(verifyPolicyFlag(objectVerify), verify.DefaultConfig())
		}
		o, err := b.Create(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, o)
	},
}

var (
	objectUpdateName string
	objectUpdateBody string
)

var objectUpdateCmd = &cobra.Command{
	Use:   "update SPACE ID",
	Short: "update an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		var b *client.UpdateObjectBuilder = c.UpdateObject(args[0], args[1])
		if cmd.Flags().Changed("name") {
			b = b.Name(objectUpdateName)
		}
		if cmd.Flags().Changed("body") {
			b = b.Body(objectUpdateBody)
		}
		err = applySetFlags(func(kind, key, value string) error {
			switch kind {
			case "text":
				b = b.SetText(key, value)
			case "number":
				n, perr := strconv.ParseFloat(value, 64)
				if perr != nil {
					return perr
				}
				b = b.SetNumber(key, n)
			case "checkbox":
				v, perr := strconv.ParseBool(value)
				if perr != nil {
					return perr
				}
				b = b.SetCheckbox(key, v)
			case "select":
				b = b.SetSelect(key, value)
			case "multi_select":
				b = b.SetMultiSelect(key, strings.Split(value, ","))
			}
			return nil
		})
		if err != nil {
			return err
		}
		o, err := b.Update(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, o)
	},
}

var objectDeleteCmd = &cobra.Command{
	Use:   "delete SPACE ID",
	Short: "delete an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		o, err := c.DeleteObject(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd, o)
	},
}

func init() {
	addListFlags(objectListCmd)
	addOutputFlag(objectListCmd)
	addOutputFlag(objectGetCmd)
	addOutputFlag(objectCreateCmd)
	addOutputFlag(objectUpdateCmd)
	addOutputFlag(objectDeleteCmd)

	objectCreateCmd.Flags().StringVar(&objectName, "name", "", "object name")
	objectCreateCmd.Flags().StringVar(&objectBody, "body", "", "markdown body")
	objectCreateCmd.Flags().StringArrayVar(&objectText, "set-text", nil, "KEY=VALUE text property, repeatable")
	objectCreateCmd.Flags().StringArrayVar(&objectNumber, "set-number", nil, "KEY=VALUE number property, repeatable")
	objectCreateCmd.Flags().StringArrayVar(&objectCheck, "set-checkbox", nil, "KEY=VALUE checkbox property, repeatable")
	objectCreateCmd.Flags().StringArrayVar(&objectSelect, "set-select", nil, "KEY=TAG select property, repeatable")
	objectCreateCmd.Flags().StringArrayVar(&objectMulti, "set-multi-select", nil, "KEY=TAG,TAG,... multi_select property, repeatable")
	objectCreateCmd.Flags().StringVar(&objectVerify, "verify", "", "read-after-write verification: enabled|disabled")

	objectUpdateCmd.Flags().StringVar(&objectUpdateName, "name", "", "new name")
	objectUpdateCmd.Flags().StringVar(&objectUpdateBody, "body", "", "new markdown body")
	objectUpdateCmd.Flags().StringArrayVar(&objectText, "set-text", nil, "KEY=VALUE text property, repeatable")
	objectUpdateCmd.Flags().StringArrayVar(&objectNumber, "set-number", nil, "KEY=VALUE number property, repeatable")
	objectUpdateCmd.Flags().StringArrayVar(&objectCheck, "set-checkbox", nil, "KEY=VALUE checkbox property, repeatable")
	objectUpdateCmd.Flags().StringArrayVar(&objectSelect, "set-select", nil, "KEY=TAG select property, repeatable")
	objectUpdateCmd.Flags().StringArrayVar(&objectMulti, "set-multi-select", nil, "KEY=TAG,TAG,... multi_select property, repeatable")

	objectCmd.AddCommand(objectListCmd, objectGetCmd, objectCreateCmd, objectUpdateCmd, objectDeleteCmd)
}
