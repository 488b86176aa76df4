package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/user"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

func setup(t *testing.T) *commandLine {
	t.Helper()

	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db, "pass123"))

	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPasswordFunc = orig })

	return newCommandLine(db)
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "adduser: no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "adduser: missing campus", args: []string{"adduser", "-name", "A", "-email", "a@test.in"}, wantErr: errHelp},
		{name: "resetpassword: no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "listusers", args: []string{"listusers"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	err := cli.run([]string{"admin", "adduser", "-name", "New Teacher", "-email", "new@ekyaschool.in", "-campus", "City Campus"})
	require.NoError(t, err)

	usr, err := cli.usrSvc.GetByEmail("new@ekyaschool.in")
	require.NoError(t, err)
	assert.Equal(t, "Ekya007", usr.EmpID)
	assert.Equal(t, user.DesignationTeacher, usr.Designation)
	assert.Equal(t, "s3cret", usr.Password)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := cli.run([]string{"admin", "adduser", "-name", "Dup", "-email", "new@ekyaschool.in", "-campus", "City Campus"})
		require.Error(t, err)
		_, ok := err.(*core.ValidationError)
		assert.True(t, ok)
	})
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	require.NoError(t, cli.run([]string{"admin", "resetpassword", "-email", "elena@ekyaschool.in"}))

	usr, err := cli.usrSvc.GetByEmail("elena@ekyaschool.in")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", usr.Password)

	t.Run("unknown email", func(t *testing.T) {
		err := cli.run([]string{"admin", "resetpassword", "-email", "ghost@ekyaschool.in"})
		assert.Equal(t, user.ErrNotFound, err)
	})
}
