package main

import (
	"log"
	"os"

	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

var logger *log.Logger

// The store is in-memory, so this CLI works on a freshly seeded copy of the
// demo data. It exists to exercise and verify the seed fixtures, not to
// administer a running server.
func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	db, err := inmemdb.Open()
	errAndDie(err)
	errAndDie(inmemdb.Seed(db, os.Getenv("DEMO_PASSWORD")))

	cli := newCommandLine(db)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
