package main

import (
	"log"
	"os"

	smcli "github.com/th3w1zard1/kotorscript-session-manager/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "session-manager",
		Usage: "Serve session pages from override templates with static fallbacks",
		Commands: []*clilib.Command{
			smcli.ServeCommand,
			smcli.CheckCommand,
			smcli.InfoCommand,
			smcli.InitCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
