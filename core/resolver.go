package core

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

type Page struct {
	Body     []byte
	FromFile bool
}

type Resolver struct {
	config *Config
	min    *minify.M
}

func NewResolver(config *Config) *Resolver {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	return &Resolver{config: config, min: m}
}

// Resolve returns the body to serve for a template route: the override
// file under the template directory when it exists, the fallback string
// otherwise. Only absence selects the fallback; any other filesystem
// error is returned to the caller.
func (r *Resolver) Resolve(name, fallback string) (Page, error) {
	path := filepath.Join(r.config.TemplateDir, name)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r.finish(Page{Body: []byte(fallback)})
		}
		return Page{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Page{}, err
	}

	page := Page{Body: content, FromFile: true}

	if r.config.Render {
		rendered, err := renderTemplate(name, content)
		if err != nil {
			return Page{}, err
		}
		page.Body = rendered
	}

	return r.finish(page)
}

func (r *Resolver) finish(page Page) (Page, error) {
	if !r.config.Minify {
		return page, nil
	}

	var buf bytes.Buffer
	if err := r.min.Minify("text/html", &buf, bytes.NewReader(page.Body)); err != nil {
		return Page{}, err
	}
	page.Body = buf.Bytes()

	return page, nil
}

func renderTemplate(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func TemplateFuncs() template.FuncMap {
	funcs := sprig.HtmlFuncMap()

	funcs["safeHTML"] = func(s interface{}) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}

	funcs["props"] = func(values ...interface{}) map[string]interface{} {
		if len(values)%2 != 0 {
			panic("props must be called with even number of arguments")
		}
		m := make(map[string]interface{}, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				panic("props keys must be strings")
			}
			m[key] = values[i+1]
		}
		return m
	}

	return funcs
}
