package admin

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
)

// readPasswordFunc reads a line from the terminal without echo. Tests swap it.
var readPasswordFunc = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

var cost int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
	}

	cmd.AddCommand(newHashPasswordCommand())
	return cmd
}

func newHashPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a lecturer password",
		Long:  `Prompt for the lecturer password and print a bcrypt hash to use as auth.admin_password_hash (CAMPUS_PULSE_ADMIN_PASSWORD_HASH).`,
		Args:  cobra.NoArgs,
		RunE:  runHashPassword,
		// stdout carries only the hash
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&cost, "cost", 12, "bcrypt cost")
	return cmd
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	prompt := cmd.ErrOrStderr()

	password, err := readPassword(prompt, "Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	confirm, err := readPassword(prompt, "Confirm password: ")
	if err != nil {
		return err
	}
	if confirm != password {
		return errors.New("passwords do not match")
	}

	hash, err := auth.HashAdminPassword(password, cost)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func readPassword(prompt io.Writer, label string) (string, error) {
	fmt.Fprint(prompt, label)
	raw, err := readPasswordFunc()
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
