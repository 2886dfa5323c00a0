package cli

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/th3w1zard1/kotorscript-session-manager/core"
	"github.com/urfave/cli/v2"
)

//go:embed starter/index.html starter/waiting.html
var starterFS embed.FS

var starterTemplates = []string{"index.html", "waiting.html"}

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Create starter override templates in the template directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "session.config.yml",
			Usage: "path to the YAML config file",
		},
	},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))
		if err := config.ApplyEnv(); err != nil {
			return err
		}

		fmt.Println("🚀 Creating starter templates in:", config.TemplateDir)

		if err := os.MkdirAll(config.TemplateDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create template directory: %w", err)
		}

		for _, name := range starterTemplates {
			target := filepath.Join(config.TemplateDir, name)

			if _, err := os.Stat(target); err == nil {
				fmt.Println("⏭  Keeping existing:", target)
				continue
			}

			data, err := starterFS.ReadFile("starter/" + name)
			if err != nil {
				return fmt.Errorf("failed to read starter template %s: %w", name, err)
			}

			if err := os.WriteFile(target, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			fmt.Println("📄 Created:", target)
		}

		fmt.Println("✅ Done.")
		fmt.Println("▶  Run: session-manager serve --env dev")
		return nil
	},
}
