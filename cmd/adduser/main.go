package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"spendtrack/internal/logger"
	"spendtrack/internal/model"
	"spendtrack/internal/password"
	"spendtrack/internal/repository/jsonfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email address")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	dataDir := fs.String("data", "data", "Path to the data directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -name <name> -email <email> [-password <password>] [-data <dir>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: name, email")
	}

	plain := *passwordFlag
	if plain == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		plain, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(plain) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	store := jsonfile.NewStore(*dataDir, logger.New(8))
	users := jsonfile.NewUserRepository(store)
	ctx := context.Background()

	if _, err := users.GetByEmail(ctx, *email); err == nil {
		return fmt.Errorf("email %s already registered", *email)
	} else if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	hash, err := password.NewBcrypt().Hash(plain)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := users.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created with id %s\n", user.Email, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// fallback for pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
