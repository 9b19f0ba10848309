package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/db"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/joho/godotenv"
)

// Account management from the shell, for bootstrapping the first admin and
// for unblocking people when the web approval flow is not available.

var store *storage.Storage

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	addEmail := addCmd.String("email", "", "email address (required)")
	addPass := addCmd.String("password", "", "password (required)")
	addFirst := addCmd.String("first", "", "first name")
	addLast := addCmd.String("last", "", "last name")
	addAdmin := addCmd.Bool("admin", false, "grant admin privileges")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listPending := listCmd.Bool("pending", false, "only accounts waiting for approval")

	approveCmd := flag.NewFlagSet("approve", flag.ExitOnError)
	approveEmail := approveCmd.String("email", "", "email of the account to approve (required)")

	pwdCmd := flag.NewFlagSet("pwd", flag.ExitOnError)
	pwdEmail := pwdCmd.String("email", "", "email address (required)")
	pwdPass := pwdCmd.String("password", "", "new password (required)")

	delCmd := flag.NewFlagSet("del", flag.ExitOnError)
	delEmail := delCmd.String("email", "", "email of the account to delete (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}
	db.Init()
	store = storage.New(db.DB)

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *addEmail == "" || *addPass == "" {
			fmt.Println("error: -email and -password are required")
			addCmd.PrintDefaults()
			os.Exit(1)
		}
		handleAdd(*addEmail, *addPass, *addFirst, *addLast, *addAdmin)

	case "list":
		listCmd.Parse(os.Args[2:])
		handleList(*listPending)

	case "approve":
		approveCmd.Parse(os.Args[2:])
		if *approveEmail == "" {
			fmt.Println("error: -email is required")
			approveCmd.PrintDefaults()
			os.Exit(1)
		}
		handleApprove(*approveEmail)

	case "pwd":
		pwdCmd.Parse(os.Args[2:])
		if *pwdEmail == "" || *pwdPass == "" {
			fmt.Println("error: -email and -password are required")
			pwdCmd.PrintDefaults()
			os.Exit(1)
		}
		handleResetPwd(*pwdEmail, *pwdPass)

	case "del":
		delCmd.Parse(os.Args[2:])
		if *delEmail == "" {
			fmt.Println("error: -email is required")
			delCmd.PrintDefaults()
			os.Exit(1)
		}
		handleDelete(*delEmail)

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("user-cli manages lab site accounts:")
	fmt.Println("  add      create an account, already approved (e.g. user-cli add -email pi@lab.ac.kr -password secret -admin)")
	fmt.Println("  list     list accounts (-pending for unapproved only)")
	fmt.Println("  approve  approve a pending account (e.g. user-cli approve -email student@lab.ac.kr)")
	fmt.Println("  pwd      reset an account password")
	fmt.Println("  del      delete an account")
}

func handleAdd(email, password, first, last string, admin bool) {
	if _, err := store.GetUserByEmail(email); err == nil {
		fmt.Printf("account '%s' already exists\n", email)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Email:      email,
		Password:   hash,
		FirstName:  first,
		LastName:   last,
		IsApproved: true, // operator created, no point in waiting for approval
		IsAdmin:    admin,
	}
	if err := store.CreateUser(user); err != nil {
		log.Fatalf("create account: %v", err)
	}
	fmt.Printf("account '%s' created (admin: %v)\n", email, admin)
}

func handleList(pendingOnly bool) {
	var (
		users []models.User
		err   error
	)
	if pendingOnly {
		users, err = store.ListPendingUsers()
	} else {
		users, err = store.ListUsers()
	}
	if err != nil {
		log.Fatalf("list accounts: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tAPPROVED\tADMIN\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\t%s\n",
			u.ID[:8]+"...", u.Email, u.FullName(), u.IsApproved, u.IsAdmin,
			u.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func handleApprove(email string) {
	user, err := store.GetUserByEmail(email)
	if err != nil {
		fmt.Printf("no account '%s'\n", email)
		return
	}
	if _, err := store.ApproveUser(user.ID); err != nil {
		log.Fatalf("approve account: %v", err)
	}
	fmt.Printf("account '%s' approved\n", email)
}

func handleResetPwd(email, password string) {
	user, err := store.GetUserByEmail(email)
	if err != nil {
		fmt.Printf("no account '%s'\n", email)
		return
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	if err := store.UpdateUserPassword(user.ID, hash); err != nil {
		log.Fatalf("reset password: %v", err)
	}
	fmt.Printf("password for '%s' reset\n", email)
}

func handleDelete(email string) {
	user, err := store.GetUserByEmail(email)
	if err != nil {
		fmt.Printf("no account '%s'\n", email)
		return
	}
	if err := store.DeleteUser(user.ID); err != nil {
		log.Fatalf("delete account: %v", err)
	}
	fmt.Printf("account '%s' deleted\n", email)
}
