// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes a markdown reference page per service from the live
// awsctl command tree. Examples and notes are merged in from an optional
// <docs>/templates/awsctl.yaml.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/awsctl/internal/command"
	"github.com/tfctl/awsctl/internal/meta"
)

// Extras holds hand-written content keyed by "<service> <operation>".
type Extras struct {
	Operations map[string]Extra `yaml:"operations"`
}

type Extra struct {
	Examples []Example `yaml:"examples"`
	Notes    []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
	Default     string
}

type Operation struct {
	Name      string
	Usage     string
	Remote    string
	Mutating  bool
	Flags     []Flag
	Extra     Extra
	Anchor    string
	UsageLine string
}

type TemplateData struct {
	Service    string
	Aliases    []string
	Usage      string
	Operations []Operation
	Date       string
	Version    string
}

const page = `# awsctl {{ .Service }}

{{ .Usage }}.{{ if .Aliases }} Alias: {{ range .Aliases }}` + "`{{ . }}`" + `{{ end }}.{{ end }}

_Generated {{ .Date }} for version {{ .Version }}._

| Operation | Remote call | Mutating |
|-----------|-------------|----------|
{{ range .Operations }}| [{{ .Name }}](#{{ .Anchor }}) | {{ .Remote }} | {{ if .Mutating }}yes{{ else }}no{{ end }} |
{{ end }}
{{ range .Operations }}
## {{ .Name }}

{{ .Usage }}.

` + "```" + `
{{ .UsageLine }}
` + "```" + `

| Flag | Description | Default |
|------|-------------|---------|
{{ range .Flags }}| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} |
{{ end }}
{{- range .Extra.Notes }}
> {{ . }}
{{ end }}
{{- range .Extra.Examples }}
{{ .Description }}:

` + "```" + `
{{ .Command }}
` + "```" + `
{{ end }}
{{- end }}`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	extras, err := loadExtras(filepath.Join(docs, "templates", "awsctl.yaml"))
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("page").Parse(page))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	app := command.NewApp(meta.Meta{})
	for _, svc := range app.Commands {
		if len(svc.Commands) == 0 {
			continue
		}

		path := filepath.Join(folder, svc.Name+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := render(file, tmpl, svc, extras); err != nil {
			panic(err)
		}
		file.Close()
	}
}

func loadExtras(path string) (Extras, error) {
	var extras Extras
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return extras, nil
	} else if err != nil {
		return extras, err
	}
	err = yaml.Unmarshal(data, &extras)
	return extras, err
}

func render(w io.Writer, tmpl *template.Template, svc *cli.Command, extras Extras) error {
	data := TemplateData{
		Service: svc.Name,
		Aliases: svc.Aliases,
		Usage:   upperFirst(svc.Usage),
		Date:    time.Now().Format("January 2, 2006"),
		Version: getVersion(),
	}

	for _, op := range svc.Commands {
		remote, _ := op.Metadata["operation"].(string)
		mutating, _ := op.Metadata["mutating"].(bool)

		o := Operation{
			Name:      op.Name,
			Usage:     upperFirst(op.Usage),
			Remote:    remote,
			Mutating:  mutating,
			Extra:     extras.Operations[svc.Name+" "+op.Name],
			Anchor:    op.Name,
			UsageLine: fmt.Sprintf("awsctl %s %s [flags]", svc.Name, op.Name),
		}
		for _, f := range op.Flags {
			o.Flags = append(o.Flags, describe(f))
		}
		sort.Slice(o.Flags, func(i, j int) bool { return o.Flags[i].Syntax < o.Flags[j].Syntax })

		data.Operations = append(data.Operations, o)
	}

	return tmpl.Execute(w, data)
}

func describe(f cli.Flag) Flag {
	var spellings []string
	for _, n := range f.Names() {
		if len(n) == 1 {
			spellings = append(spellings, "-"+n)
		} else {
			spellings = append(spellings, "--"+n)
		}
	}

	out := Flag{Syntax: strings.Join(spellings, ", ")}
	if d, ok := f.(cli.DocGenerationFlag); ok {
		out.Description = strings.ReplaceAll(d.GetUsage(), "|", `\|`)
		if d.TakesValue() {
			out.Default = d.GetValue()
		}
	}
	return out
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
