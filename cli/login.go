// ABOUTME: Login and logout commands
// ABOUTME: Stores the API token in the XDG data directory
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/term"

	"github.com/studiokit/studioctl/config"
)

// LoginCommand prompts for an API token and stores it locally.
func LoginCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	tokenFlag := fs.String("token", "", "API token (prompted if omitted)")
	_ = fs.Parse(args)

	token := strings.TrimSpace(*tokenFlag)
	if token == "" {
		var err error
		token, err = promptToken()
		if err != nil {
			return err
		}
	}
	if token == "" {
		return fmt.Errorf("no token provided")
	}

	if err := config.SaveToken(&oauth2.Token{AccessToken: token}); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Printf("✓ Token saved to %s\n", config.CredentialsPath())
	return nil
}

// LogoutCommand removes the stored token.
func LogoutCommand(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := config.ClearToken(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	fmt.Println("✓ Logged out")
	return nil
}

// promptToken reads the token without echo when stdin is a terminal.
func promptToken() (string, error) {
	fmt.Fprint(os.Stderr, "API token: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}
