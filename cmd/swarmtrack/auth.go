package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"swarmtrack/pkg/auth"
	"swarmtrack/pkg/ui"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Foursquare OAuth tokens",
	Long: `Manage stored Foursquare OAuth tokens securely.

Tokens are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - Environment variables (read-only fallback)

Never share your token or config files!`,
}

// loginCmd represents the auth login command
var loginCmd = &cobra.Command{
	Use:   "login [label]",
	Short: "Store a Foursquare OAuth token securely",
	Long: `Store a Foursquare OAuth token in the system keychain or an encrypted
file. You will be prompted for the token; input is hidden.

To get a token, authorize your app at foursquare.com/developers and
complete the OAuth flow, or copy the oauth_token parameter from an
authenticated Swarm web session.`,
	Example: `  # Store the default token
  swarmtrack auth login

  # Keep work and personal tokens side by side
  swarmtrack auth login personal`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLogin,
}

// logoutCmd represents the auth logout command
var logoutCmd = &cobra.Command{
	Use:   "logout [label]",
	Short: "Remove a stored token",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLogout,
}

// authListCmd represents the auth list command
var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tokens",
	Long:  `List all stored tokens with the secret portion masked.`,
	Run:   runAuthList,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(authListCmd)
}

func runLogin(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		ui.PrintError("Failed to initialize credential manager: %v", err)
		os.Exit(1)
	}

	label := "default"
	if len(args) > 0 {
		label = args[0]
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("OAuth token: ")
	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		ui.PrintError("Failed to read token: %v", err)
		os.Exit(1)
	}
	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		ui.PrintError("Token cannot be empty")
		os.Exit(1)
	}

	fmt.Print("User ID (press Enter for \"self\"): ")
	userID, _ := reader.ReadString('\n')
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = "self"
	}

	account := &auth.Account{Label: label, Token: token, UserID: userID}
	if err := manager.Store(account); err != nil {
		ui.PrintError("Failed to store token: %v", err)
		os.Exit(1)
	}

	ui.PrintSuccess("Token stored as %q", label)
}

func runLogout(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		ui.PrintError("Failed to initialize credential manager: %v", err)
		os.Exit(1)
	}

	label := "default"
	if len(args) > 0 {
		label = args[0]
	}

	if err := manager.Delete(label); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}

	ui.PrintSuccess("Removed token %q", label)
}

func runAuthList(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		ui.PrintError("Failed to initialize credential manager: %v", err)
		os.Exit(1)
	}

	accounts, err := manager.List()
	if err != nil {
		ui.PrintError("Failed to list tokens: %v", err)
		os.Exit(1)
	}

	if len(accounts) == 0 {
		ui.PrintInfo("No stored tokens. Run 'swarmtrack auth login' to add one.")
		return
	}

	for _, account := range accounts {
		masked := auth.SanitizeAccount(account)
		fmt.Printf("  %s  %s  (user %s, saved %s)\n",
			ui.Bold(masked.Label), masked.Token, masked.UserID,
			masked.LastModified.Format("2006-01-02"))
	}
}
