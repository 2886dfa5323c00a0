package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/encoding/json"
	"github.com/th3w1zard1/kotorscript-session-manager/core"
	"github.com/urfave/cli/v2"
)

type routeInfo struct {
	Path     string `json:"path"`
	Template string `json:"template,omitempty"`
	Source   string `json:"source"`
}

type infoOutput struct {
	TemplateDir string      `json:"templateDir"`
	Port        int         `json:"port"`
	Render      bool        `json:"render"`
	Minify      bool        `json:"minify"`
	Routes      []routeInfo `json:"routes"`
}

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print resolved config and template override summary",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "session.config.yml",
			Usage: "path to the YAML config file",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "emit the summary as JSON",
		},
	},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))
		if err := config.ApplyEnv(); err != nil {
			return err
		}

		routes := []routeInfo{
			{Path: "/health", Source: "built-in"},
			pageRoute(config, "/", core.IndexTemplate),
			pageRoute(config, "/waiting", core.WaitingTemplate),
		}

		if c.Bool("json") {
			out := infoOutput{
				TemplateDir: config.TemplateDir,
				Port:        config.Port,
				Render:      config.Render,
				Minify:      config.Minify,
				Routes:      routes,
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println("📁 Template Directory:", config.TemplateDir)
		fmt.Println("🔌 Port:", config.Port)
		fmt.Println("🧩 Render Templates:", config.Render)
		fmt.Println("📦 Minify HTML:", config.Minify)
		fmt.Println()

		for _, route := range routes {
			if route.Template != "" {
				fmt.Printf("🗂  %s → %s (%s)\n", route.Path, route.Template, route.Source)
			} else {
				fmt.Printf("🗂  %s (%s)\n", route.Path, route.Source)
			}
		}

		return nil
	},
}

func pageRoute(config *core.Config, path, template string) routeInfo {
	source := "fallback"
	if _, err := os.Stat(filepath.Join(config.TemplateDir, template)); err == nil {
		source = "file"
	}
	return routeInfo{Path: path, Template: template, Source: source}
}
