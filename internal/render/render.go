// Package render turns project metadata entries into the formats documentation tooling consumes.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/louiss0/projectinfo/custom_errors"
	"github.com/louiss0/projectinfo/project_info"
)

// Format names an output format.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	TOML     Format = "toml"
	Env      Format = "env"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Table    Format = "table"
)

// Formats lists every supported format name.
var Formats = []string{
	string(JSON),
	string(YAML),
	string(TOML),
	string(Env),
	string(Markdown),
	string(HTML),
	string(Table),
}

type renderFunc func(w io.Writer, entries []project_info.Entry) error

var renderers = map[Format]renderFunc{
	JSON:     renderJSON,
	YAML:     renderYAML,
	TOML:     renderTOML,
	Env:      renderEnv,
	Markdown: renderMarkdown,
	HTML:     renderHTML,
	Table:    renderTable,
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	if !lo.Contains(Formats, name) {
		return "", custom_errors.UnknownFormat(name, Formats)
	}
	return Format(name), nil
}

// Entries writes entries to w in the given format, keeping their order.
func Entries(w io.Writer, entries []project_info.Entry, format Format) error {
	fn, ok := renderers[format]
	if !ok {
		return custom_errors.UnknownFormat(string(format), Formats)
	}
	return fn(w, entries)
}

// Record writes the whole record.
func Record(w io.Writer, info project_info.ProjectInfo, format Format) error {
	return Entries(w, info.Entries(), format)
}

// Value writes a bare value followed by a newline.
// Structured formats still get a single-key document so the output stays parseable.
func Value(w io.Writer, entry project_info.Entry, format Format) error {
	if format == "" {
		_, err := fmt.Fprintln(w, entry.Value)
		return err
	}
	return Entries(w, []project_info.Entry{entry}, format)
}

// EnvKey turns a record key into an upper snake case variable name.
func EnvKey(key string) string {
	return strings.ToUpper(lo.SnakeCase(key))
}

func renderJSON(w io.Writer, entries []project_info.Entry) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	for i, e := range entries {
		k, err := marshalJSONString(e.Key)
		if err != nil {
			return err
		}
		v, err := marshalJSONString(e.Value)
		if err != nil {
			return err
		}

		fmt.Fprintf(&buf, "  %s: %s", k, v)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// marshalJSONString encodes s without escaping <, > and &, so markup survives intact.
func marshalJSONString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func renderYAML(w io.Writer, entries []project_info.Entry) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// renderTOML marshals one key at a time because go-toml sorts map keys.
func renderTOML(w io.Writer, entries []project_info.Entry) error {
	for _, e := range entries {
		b, err := toml.Marshal(map[string]string{e.Key: e.Value})
		if err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// renderEnv marshals one key at a time because godotenv sorts map keys.
func renderEnv(w io.Writer, entries []project_info.Entry) error {
	for _, e := range entries {
		line, err := godotenv.Marshal(map[string]string{EnvKey(e.Key): e.Value})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderMarkdown(w io.Writer, entries []project_info.Entry) error {
	var b strings.Builder
	b.WriteString("| Key | Value |\n")
	b.WriteString("| --- | --- |\n")

	for _, e := range entries {
		value := strings.ReplaceAll(e.Value, "|", `\|`)
		switch e.Kind {
		case project_info.KindURL:
			value = fmt.Sprintf("[%s](%s)", value, e.Value)
		case project_info.KindText:
			value = "`" + value + "`"
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", e.Key, value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var htmlTemplate = template.Must(template.New("project-info").Funcs(template.FuncMap{
	"markup": func(s string) template.HTML { return template.HTML(s) },
}).Parse(`<dl class="project-info">
{{- range . }}
  <dt>{{ .Key }}</dt>
  <dd>
    {{- if eq .Kind "url" }}<a href="{{ .Value }}">{{ .Value }}</a>
    {{- else if eq .Kind "markup" }}{{ markup .Value }}
    {{- else }}{{ .Value }}{{ end -}}
  </dd>
{{- end }}
</dl>
`))

// renderHTML emits a definition list. Markup entries are written verbatim, everything else is escaped.
func renderHTML(w io.Writer, entries []project_info.Entry) error {
	return htmlTemplate.Execute(w, entries)
}

func renderTable(w io.Writer, entries []project_info.Entry) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("key", "value")

	lo.ForEach(entries, func(e project_info.Entry, _ int) {
		t.Row(e.Key, e.Value)
	})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
