package main

import (
	"fmt"

	"github.com/ekyaschools/pdi/core/user"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	usr, err := cli.usrSvc.GetByEmail(email)
	if err != nil {
		return err
	}

	if _, err := cli.usrSvc.Update("CLI", usr.EmpID, user.UpdateUser{Password: &pwd}); err != nil {
		return err
	}
	fmt.Printf("password reset for %s\n", usr.EmpID)
	return nil
}
