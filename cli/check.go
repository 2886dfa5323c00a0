package cli

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/th3w1zard1/kotorscript-session-manager/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate override templates in the template directory",
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

		var templates []string
		walkErr := filepath.Walk(config.TemplateDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(path, ".html") {
				templates = append(templates, path)
			}
			return nil
		})
		if walkErr != nil {
			return fmt.Errorf("failed to scan template directory %s: %w", config.TemplateDir, walkErr)
		}

		if len(templates) == 0 {
			fmt.Println("🧐 No override templates found in", config.TemplateDir)
			return nil
		}

		var failed bool
		for _, path := range templates {
			content, err := os.ReadFile(path)
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → read error: %v\n", path, err)
				continue
			}

			tmpl, err := template.New(filepath.Base(path)).Funcs(core.TemplateFuncs()).Parse(string(content))
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → parse error: %v\n", path, err)
				continue
			}

			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, map[string]interface{}{}); err != nil {
				failed = true
				fmt.Printf("❌ %s → exec error: %v\n", path, err)
			} else {
				fmt.Printf("✅ %s\n", path)
			}
		}

		if failed {
			return cli.Exit("some templates failed to validate", 1)
		}

		fmt.Println("✅ All templates validated successfully.")
		return nil
	},
}
