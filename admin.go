package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Tmaxpro/RandomGift-Backend/auth"
	"github.com/Tmaxpro/RandomGift-Backend/db"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// runAdmin implements the `admin <create|delete|list>` subcommand. It talks
// to the same database as the server, configured through DATABASE_URL and
// DATABASE_TYPE; credentials come from ADMIN_USERNAME and ADMIN_PASSWORD.
func runAdmin(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no command given")
		printAdminUsage()
		os.Exit(1)
	}

	command := strings.ToLower(args[0])
	if command == "help" || command == "--help" || command == "-h" {
		printAdminUsage()
		return
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "Error: DATABASE_URL must be set")
		os.Exit(1)
	}

	conn, err := openDatabase(os.Getenv("DATABASE_TYPE"), databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to open database:", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to create schema:", err)
		os.Exit(1)
	}

	st := store.New(conn)

	switch command {
	case "create":
		if !adminCreate(st) {
			os.Exit(1)
		}
	case "delete":
		if !adminDelete(st) {
			os.Exit(1)
		}
	case "list":
		adminList(st)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", command)
		printAdminUsage()
		os.Exit(1)
	}
}

// adminCreate creates the admin named in the environment. If the username is
// taken it offers to update the password instead.
func adminCreate(st *store.Store) bool {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Error: ADMIN_USERNAME and ADMIN_PASSWORD must be set (a .env file works)")
		return false
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to hash password:", err)
		return false
	}

	admin, err := st.CreateAdmin(username, hash)
	if err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			fmt.Fprintln(os.Stderr, "Error: failed to create admin:", err)
			return false
		}

		fmt.Printf("The administrator '%s' already exists.\n", username)
		if !confirm("Update the password? (y/n): ") {
			fmt.Println("Operation cancelled.")
			return false
		}
		if err := st.UpdateAdminPassword(username, hash); err != nil {
			fmt.Fprintln(os.Stderr, "Error: failed to update password:", err)
			return false
		}
		fmt.Printf("Password for administrator '%s' updated.\n", username)
		return true
	}

	fmt.Printf("Administrator '%s' created.\n", username)
	fmt.Printf("  ID: %s\n", admin.ID)
	fmt.Printf("  Created: %s\n", admin.CreatedAt.Format("2006-01-02 15:04:05"))
	return true
}

// adminDelete removes the admin named in the environment, after confirmation
func adminDelete(st *store.Store) bool {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		fmt.Fprintln(os.Stderr, "Error: ADMIN_USERNAME must be set")
		return false
	}

	fmt.Printf("You are about to delete the administrator '%s'\n", username)
	if !confirm("Are you sure? (y/n): ") {
		fmt.Println("Operation cancelled.")
		return false
	}

	found, err := st.DeleteAdmin(username)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to delete admin:", err)
		return false
	}
	if !found {
		fmt.Fprintf(os.Stderr, "The administrator '%s' does not exist.\n", username)
		return false
	}

	fmt.Printf("Administrator '%s' deleted.\n", username)
	return true
}

// adminList prints every admin account
func adminList(st *store.Store) {
	admins, err := st.ListAdmins()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to list admins:", err)
		os.Exit(1)
	}

	if len(admins) == 0 {
		fmt.Println("No administrators found.")
		return
	}

	fmt.Printf("Administrators (%d):\n", len(admins))
	fmt.Println(strings.Repeat("-", 60))
	for _, admin := range admins {
		fmt.Printf("  ID: %s\n", admin.ID)
		fmt.Printf("  Username: %s\n", admin.Username)
		fmt.Printf("  Created: %s\n", admin.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println(strings.Repeat("-", 60))
	}
}

// confirm prompts on stdout and reads a y/n answer from stdin
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

func printAdminUsage() {
	fmt.Println(`Usage: randomgift admin <command>

Commands:
  create    Create an administrator from ADMIN_USERNAME / ADMIN_PASSWORD
  delete    Delete the administrator named in ADMIN_USERNAME
  list      List all administrators
  help      Show this help`)
}
