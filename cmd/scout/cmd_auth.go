package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the PharmaScout service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := ""
		if len(args) == 1 {
			email = args[0]
		} else {
			var err error
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		client, _, err := buildClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.ParsedTimeout())
		defer cancel()
		if err := client.Login(ctx, email, password); err != nil {
			return fmt.Errorf("login failed: %s", userFacing(err))
		}
		fmt.Println("Logged in.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a PharmaScout account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		firstName, err := promptLine("First name: ")
		if err != nil {
			return err
		}
		lastName, err := promptLine("Last name: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		client, _, err := buildClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.ParsedTimeout())
		defer cancel()

		if _, err := client.Register(ctx, email, password, firstName, lastName); err != nil {
			return fmt.Errorf("registration failed: %s", userFacing(err))
		}
		// Registration does not return a token; log in right away the same
		// way the web client does.
		if err := client.Login(ctx, email, password); err != nil {
			return fmt.Errorf("account created but login failed: %s", userFacing(err))
		}
		fmt.Println("Account created and logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := buildClient()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.ParsedTimeout())
		defer cancel()
		profile, err := client.Profile(ctx)
		if err != nil {
			return fmt.Errorf("%s", userFacing(err))
		}
		fmt.Printf("%s <%s>\n", profile.FullName(), profile.Email)
		return nil
	},
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo. Unlike promptLine it never
// trims: whitespace is legal in a password, so only the line terminator of
// the piped-input fallback is stripped.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Piped input (tests, scripts): fall back to a plain line read.
		return readPasswordLine(os.Stdin)
	}
	defer fmt.Println()
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// readPasswordLine strips the line terminator and nothing else.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
