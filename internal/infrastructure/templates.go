package infrastructure

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// GoTemplateEngine implements domain.TemplatePort using text/template
type GoTemplateEngine struct {
	funcs template.FuncMap
}

func NewGoTemplateEngine() *GoTemplateEngine {
	funcs := sprig.TxtFuncMap()
	funcs["pascal"] = func(s string) string {
		parts := strings.Split(s, "_")
		for i := range parts {
			if parts[i] == "" {
				continue
			}
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
		return strings.Join(parts, "")
	}
	return &GoTemplateEngine{funcs: funcs}
}

func (t *GoTemplateEngine) Render(name, tmpl string, data interface{}) ([]byte, error) {
	// missingkey=error keeps output a pure function of the data record.
	tObj, err := template.New(name).Funcs(t.funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tObj.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
