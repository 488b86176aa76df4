package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/user"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc   *user.Service
	validate *validator.Validate
}

func newCommandLine(db *inmemdb.DB) *commandLine {
	return &commandLine{
		usrSvc:   user.NewService(inmemdb.NewUserRepository(db), audit.NopRecorder{}),
		validate: validator.New(),
	}
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -name NAME -email EMAIL -designation Teacher|HOS|Admin -campus CAMPUS - create a user")
	fmt.Println("  resetpassword -email EMAIL - reset a user's password")
	fmt.Println("  listusers - print all seeded users")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserDesignation := addUserCmd.String("designation", user.DesignationTeacher, "Teacher, HOS or Admin.")
	addUserCampus := addUserCmd.String("campus", "", "The user's campus.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserEmail == "" || *addUserCampus == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			if err == errHelp {
				addUserCmd.Usage()
			}
			return err
		}
		return cli.addUser(*addUserName, *addUserEmail, *addUserDesignation, *addUserCampus, pwd)

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			if err == errHelp {
				resetPasswordCmd.Usage()
			}
			return err
		}
		return cli.resetPassword(*resetPasswordEmail, pwd)

	case "listusers":
		return cli.listUsers()

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errHelp
	}
	return string(pwd), nil
}

func (cli *commandLine) listUsers() error {
	users, err := cli.usrSvc.QueryAll()
	if err != nil {
		return err
	}
	for _, usr := range users {
		fmt.Printf("%-10s %-20s %-35s %-8s %s\n", usr.EmpID, usr.Name, usr.Email, usr.Designation, usr.Campus)
	}
	return nil
}
