package main

import (
	"fmt"

	"github.com/ekyaschools/pdi/core/user"
)

func (cli *commandLine) addUser(name, email, designation, campus, pwd string) error {
	nu := user.NewUser{
		Name:        name,
		Email:       email,
		Designation: designation,
		Campus:      campus,
		Password:    pwd,
	}
	if err := nu.Validate(cli.validate, cli.usrSvc); err != nil {
		return err
	}

	usr, err := cli.usrSvc.Create("CLI", nu)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s)\n", usr.EmpID, usr.Email)
	return nil
}
