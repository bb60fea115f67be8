package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/transport"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "manage the local session",
}

var (
	loginAccountKey   string
	loginAppKey       string
	loginMnemonic     string
	loginRefreshToken string
)

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "mint a session from an account key, app key, mnemonic, or refresh token",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if loginAccountKey == "" && loginAppKey == "" && loginMnemonic == "" && loginRefreshToken == "" {
			if err := promptForCredential(); err != nil {
				return err
			}
		}

		sess, err := c.Transport.Login(cmd.Context(), pickCredentialSource(), loginAccountKey, loginAppKey, loginMnemonic, loginRefreshToken)
		if err != nil {
			return err
		}
		return render(cmd, map[string]any{"source": sess.Source.String(), "status": "logged in"})
	},
}

// promptForCredential is the interactive fallback when no credential
// flag is given: it asks which kind of credential the caller has, then
// reads the raw value from stdin. Only the session token Login returns
// ever reaches the keystore; the raw secret is never persisted.
func promptForCredential() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("credential type (account-key/app-key/mnemonic/refresh-token): ")
	kind, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	kind = strings.TrimSpace(kind)

	fmt.Print("value: ")
	value, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	switch kind {
	case "app-key":
		loginAppKey = value
	case "mnemonic":
		loginMnemonic = value
	case "refresh-token":
		loginRefreshToken = value
	default:
		loginAccountKey = value
	}
	return nil
}

func pickCredentialSource() transport.SessionSource {
	switch {
	case loginAccountKey != "":
		return transport.SourceAccountKey
	case loginAppKey != "":
		return transport.SourceAppKey
	case loginMnemonic != "":
		return transport.SourceMnemonic
	default:
		return transport.SourceRefreshToken
	}
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.Transport.Logout(cmd.Context()); err != nil {
			return err
		}
		return render(cmd, map[string]any{"status": "logged out"})
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "report whether a session token is currently stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		_, err = c.Transport.Keys.Load(cmd.Context())
		status := "authenticated"
		if err != nil {
			status = "not authenticated"
		}
		return render(cmd, map[string]any{"status": status})
	},
}

func init() {
	authLoginCmd.Flags().StringVar(&loginAccountKey, "account-key", "", "account key credential")
	authLoginCmd.Flags().StringVar(&loginAppKey, "app-key", "", "app key credential")
	authLoginCmd.Flags().StringVar(&loginMnemonic, "mnemonic", "", "mnemonic credential")
	authLoginCmd.Flags().StringVar(&loginRefreshToken, "refresh-token", "", "refresh token credential")
	addOutputFlag(authLoginCmd)
	addOutputFlag(authLogoutCmd)
	addOutputFlag(authStatusCmd)

	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)
}
