package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	anytypeconfig "github.com/anytype-sdk/anytype-go/config"
	"github.com/anytype-sdk/anytype-go/errs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "inspect or change the resolved configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "print the fully resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := anytypeconfig.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return render(cmd, cfg)
	},
}

// configSettableKeys names the viper keys configurable via "config set",
// mirroring the flags registered on RootCmd in root.go.
var configSettableKeys = map[string]bool{
	"rest_base_url": true,
	"rpc_endpoint":  true,
	"keystore_path": true,
	"output":        true,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "persist a setting to the config file (rest_base_url, rpc_endpoint, keystore_path, output)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !configSettableKeys[key] {
			return errs.Validation("unknown config key: " + key)
		}
		viper.Set(key, value)
		if viper.ConfigFileUsed() == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			viper.SetConfigFile(home + "/.anytype-go.yaml")
		}
		if err := viper.WriteConfig(); err != nil {
			if err := viper.SafeWriteConfig(); err != nil {
				return err
			}
		}
		return render(cmd, map[string]any{"key": key, "value": value, "status": "saved"})
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "clear every override and fall back to built-in defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		for key := range configSettableKeys {
			viper.Set(key, nil)
		}
		if viper.ConfigFileUsed() != "" {
			if err := viper.WriteConfig(); err != nil {
				return err
			}
		}
		return render(cmd, map[string]any{"status": "reset"})
	},
}

func init() {
	addOutputFlag(configShowCmd)
	addOutputFlag(configSetCmd)
	addOutputFlag(configResetCmd)

	configCmd.AddCommand(configShowCmd, configSetCmd, configResetCmd)
}
