package auth

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"github.com/tdhoang/marketgraph/cmd/cli/api"
	"github.com/tdhoang/marketgraph/cmd/cli/config"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Init registers account commands (signup, signin, logout) on the root command.
func Init(rootCmd *cobra.Command) {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign up, sign in, and sign out",
	}
	authCmd.AddCommand(signupCmd(), signinCmd(), logoutCmd())
	rootCmd.AddCommand(authCmd)
}

func signupCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}
			pw, err := passwordOrPrompt(password)
			if err != nil {
				return err
			}

			var out struct {
				Msg string `json:"msg"`
			}
			if err := api.Do("POST", "/signup", "", map[string]string{
				"username": username,
				"password": pw,
			}, &out); err != nil {
				return fmt.Errorf("signup failed: %w", err)
			}

			fmt.Println(out.Msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username for the new account")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func signinCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store the bearer token locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}
			pw, err := passwordOrPrompt(password)
			if err != nil {
				return err
			}

			var out struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			}
			form := url.Values{"username": {username}, "password": {pw}}
			if err := api.PostForm("/signin", form, &out); err != nil {
				return fmt.Errorf("signin failed: %w", err)
			}
			if out.AccessToken == "" {
				return fmt.Errorf("signin succeeded but no token returned")
			}

			if err := config.SaveToken(out.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Println("Signed in. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to sign in as")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the locally stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.TokenExists() {
				fmt.Println("Not signed in.")
				return nil
			}
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

// passwordOrPrompt returns the flag value when set, otherwise prompts on the
// terminal without echo.
func passwordOrPrompt(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Print("Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(pw), nil
}
