package cli

import (
	sessionmanager "github.com/th3w1zard1/kotorscript-session-manager"

	"github.com/urfave/cli/v2"
)

var ServeCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the session manager HTTP service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Value: "prod",
			Usage: "runtime mode: dev (template watching, live reload) or prod",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "listen port (overrides config file and SESSION_MANAGER_PORT)",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: "session.config.yml",
			Usage: "path to the YAML config file",
		},
	},
	Action: func(c *cli.Context) error {
		sessionmanager.Start(sessionmanager.RuntimeConfig{
			Env:        c.String("env"),
			Port:       c.Int("port"),
			ConfigFile: c.String("config"),
		})
		return nil
	},
}
