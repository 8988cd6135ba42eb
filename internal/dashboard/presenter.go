// Copyright 2026 The maclab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"bytes"
	"embed"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(value) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", errorchain.NewWithMessagef(maclab.ErrArgument, "unsupported output format '%s'", value)
	}
}

//go:embed templates/*.tmpl
var templates embed.FS

type Presenter struct {
	t *template.Template
}

func NewPresenter() (*Presenter, error) {
	funcMap := sprig.TxtFuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	tmpl, err := template.New("dashboard").Funcs(funcMap).ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrInternal, "failed to parse templates").
			CausedBy(err)
	}

	return &Presenter{t: tmpl}, nil
}

// Render writes the given view to w. Only Home and LinkView can be rendered
// as text, any value can be rendered as JSON or YAML.
func (p *Presenter) Render(out io.Writer, format Format, view any) error {
	var (
		buf bytes.Buffer
		err error
	)

	switch format {
	case FormatJSON:
		err = p.renderJSON(&buf, view)
	case FormatYAML:
		err = p.renderYAML(&buf, view)
	default:
		err = p.renderText(&buf, view)
	}

	if err != nil {
		return err
	}

	_, err = out.Write(buf.Bytes())

	return err
}

func (p *Presenter) renderText(buf *bytes.Buffer, view any) error {
	var name string

	switch view.(type) {
	case Home, *Home:
		name = "home.tmpl"
	case LinkView, *LinkView:
		name = "link.tmpl"
	default:
		return errorchain.NewWithMessagef(maclab.ErrArgument, "%T cannot be rendered as text", view)
	}

	if err := p.t.ExecuteTemplate(buf, name, view); err != nil {
		return errorchain.NewWithMessage(maclab.ErrInternal, "failed to render template").CausedBy(err)
	}

	if buf.Len() != 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}

	return nil
}

func (p *Presenter) renderJSON(buf *bytes.Buffer, view any) error {
	raw, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return errorchain.NewWithMessage(maclab.ErrInternal, "failed to encode view").CausedBy(err)
	}

	buf.Write(raw)
	buf.WriteByte('\n')

	return nil
}

func (p *Presenter) renderYAML(buf *bytes.Buffer, view any) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	if err := enc.Encode(view); err != nil {
		return errorchain.NewWithMessage(maclab.ErrInternal, "failed to encode view").CausedBy(err)
	}

	return enc.Close()
}
