// userctl is a command-line client for a running userdir server. Every
// invocation authenticates with the given credentials, performs a single
// directory operation and prints the result as JSON.
//
// Usage:
//
//	userctl -u <login> -p <password> [-addr <url>] <command> [arguments]
//
// Commands:
//
//	create <file.json>                      create accounts from a batch file
//	list                                    list active accounts
//	get <login>                             show one account profile
//	self                                    show the authenticated account
//	older-than <years>                      list accounts older than N years
//	update-details <id> <name> <gender> [birthday]
//	update-password <id> <old> <new>
//	update-login <id> <new-login>
//	delete <login>                          soft-delete an account
//	restore <login>                         restore a soft-deleted account
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nmaksimov/userdir/internal/adapter"
	"github.com/nmaksimov/userdir/internal/config"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("userctl")

	username := flag.String("u", "", "login to authenticate with")
	password := flag.String("p", "", "password to authenticate with")
	address := flag.String("addr", "", "base URL of the userdir server")
	showVersion := flag.Bool("version", false, "print build information and exit")

	// GetAdapterConfig registers the shared configuration flags and performs
	// the single flag.Parse for this process.
	cfg, err := config.GetAdapterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if *showVersion {
		printBuildInfo()
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *address != "" {
		cfg.BaseURL = *address
	}

	client := adapter.NewHTTPDirectoryClient(adapter.HTTPClientConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+time.Minute)
	defer cancel()

	if _, err = client.Login(ctx, *username, *password); err != nil {
		fmt.Fprintln(os.Stderr, "authentication failed:", err)
		log.Fatal().Err(err).Msg("authentication failed")
	}

	if err = runCommand(ctx, client, *username, *password, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runCommand(ctx context.Context, client adapter.DirectoryClient, username, password string, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "create":
		if len(rest) != 1 {
			return fmt.Errorf("usage: create <file.json>")
		}
		return createUsers(ctx, client, rest[0])

	case "list":
		summaries, err := client.ListActive(ctx)
		if err != nil {
			return err
		}
		return printJSON(summaries)

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: get <login>")
		}
		profile, err := client.GetUser(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(profile)

	case "self":
		self, err := client.GetSelf(ctx, username, password)
		if err != nil {
			return err
		}
		return printJSON(self)

	case "older-than":
		if len(rest) != 1 {
			return fmt.Errorf("usage: older-than <years>")
		}
		years, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("years must be a number: %w", err)
		}
		agedUsers, err := client.OlderThan(ctx, years)
		if err != nil {
			return err
		}
		return printJSON(agedUsers)

	case "update-details":
		return updateDetails(ctx, client, rest)

	case "update-password":
		if len(rest) != 3 {
			return fmt.Errorf("usage: update-password <id> <old> <new>")
		}
		return client.UpdatePassword(ctx, rest[0], models.UpdatePasswordRequest{
			OldPassword: rest[1],
			NewPassword: rest[2],
		})

	case "update-login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: update-login <id> <new-login>")
		}
		return client.UpdateLogin(ctx, rest[0], models.UpdateLoginRequest{NewLogin: rest[1]})

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete <login>")
		}
		return client.DeleteUser(ctx, rest[0])

	case "restore":
		if len(rest) != 1 {
			return fmt.Errorf("usage: restore <login>")
		}
		return client.RestoreUser(ctx, rest[0])

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func createUsers(ctx context.Context, client adapter.DirectoryClient, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}

	var request models.CreateUsersRequest
	if err = json.Unmarshal(data, &request); err != nil {
		return fmt.Errorf("parse batch file: %w", err)
	}

	created, err := client.CreateUsers(ctx, request)
	if err != nil {
		return err
	}

	return printJSON(created)
}

func updateDetails(ctx context.Context, client adapter.DirectoryClient, rest []string) error {
	if len(rest) != 3 && len(rest) != 4 {
		return fmt.Errorf("usage: update-details <id> <name> <gender> [birthday]")
	}

	gender, err := strconv.Atoi(rest[2])
	if err != nil {
		return fmt.Errorf("gender must be a number: %w", err)
	}

	request := models.UpdateDetailsRequest{Name: rest[1], Gender: gender}
	if len(rest) == 4 {
		birthday, err := time.Parse("2006-01-02", rest[3])
		if err != nil {
			return fmt.Errorf("birthday must be YYYY-MM-DD: %w", err)
		}
		request.Birthday = &birthday
	}

	return client.UpdateDetails(ctx, rest[0], request)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
