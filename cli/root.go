package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile holds the path to the configuration file specified via
// --config, mirroring the file-discovery convention used across this
// ecosystem's services: an explicit flag wins, otherwise the home
// directory and current directory are searched for a dotfile.
var cfgFile string

// RootCmd is the anytype-go CLI: a client for a personal knowledge-base
// server, covering spaces, types, properties, tags, objects, members,
// templates, search, saved views, chats, file transfer, and
// configuration. Authentication is exposed through its own subcommand
// tree.
var RootCmd = &cobra.Command{
	Use:   "anytype",
	Short: "a command-line client for an anytype-style knowledge base server",
	Long: `anytype-go

A client library and CLI for a personal knowledge-base server, covering:
- space, type, property, tag, and object management
- full-text and structured search
- saved views over sets and collections
- session-based authentication with a local keystore

Configuration is resolved from (lowest to highest precedence) built-in
defaults, a config file, environment variables, and command-line flags.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.anytype-go.yaml)")
	RootCmd.PersistentFlags().String("rest-url", "", "REST API base URL")
	RootCmd.PersistentFlags().String("rpc-endpoint", "", "gRPC/HTTP2 RPC endpoint")
	RootCmd.PersistentFlags().String("keystore", "", "path to the local token keystore")
	RootCmd.PersistentFlags().String("output", "", "default output format: json|pretty|table|quiet")

	viper.BindPFlag("rest_base_url", RootCmd.PersistentFlags().Lookup("rest-url"))
	viper.BindPFlag("rpc_endpoint", RootCmd.PersistentFlags().Lookup("rpc-endpoint"))
	viper.BindPFlag("keystore_path", RootCmd.PersistentFlags().Lookup("keystore"))
	viper.BindPFlag("output", RootCmd.PersistentFlags().Lookup("output"))

	RootCmd.AddCommand(authCmd)
	RootCmd.AddCommand(spaceCmd)
	RootCmd.AddCommand(typeCmd)
	RootCmd.AddCommand(propertyCmd)
	RootCmd.AddCommand(tagCmd)
	RootCmd.AddCommand(memberCmd)
	RootCmd.AddCommand(templateCmd)
	RootCmd.AddCommand(objectCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(chatCmd)
	RootCmd.AddCommand(fileCmd)
	RootCmd.AddCommand(configCmd)
}

// initConfig discovers and reads an optional config file, then enables
// automatic environment variable binding (ANYTYPE_REST_BASE_URL,
// ANYTYPE_GRPC_ENDPOINT, etc.) before any command runs.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".anytype-go")
	}

	viper.SetEnvPrefix("anytype")
	viper.AutomaticEnv()

	// ANYTYPE_GRPC_ENDPOINT is bound explicitly, outside the ANYTYPE_
	// prefix's usual underscore mapping (rpc_endpoint).
	viper.BindEnv("rpc_endpoint", "ANYTYPE_GRPC_ENDPOINT")

	_ = viper.ReadInConfig()
}
