// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/awsctl/internal/attrs"
	"github.com/tfctl/awsctl/internal/config"
)

// tableOptions carries the text output flags.
type tableOptions struct {
	titles  bool
	color   bool
	padding int
}

// palette holds the title and alternating row colors of a table.
type palette struct {
	title, even, odd color.Color
}

// loadPalette reads colors.{title,even,odd} from the config file and
// falls back to defaults chosen for the terminal background.
func loadPalette(dark bool) palette {
	pick := func(key, light, darkDefault string) color.Color {
		if c, err := config.GetString("colors." + key); err == nil && c != "" {
			return lipgloss.Color(c)
		}
		if dark {
			return lipgloss.Color(darkDefault)
		}
		return lipgloss.Color(light)
	}

	return palette{
		title: pick("title", "#b08800", "#f6be00"),
		even:  pick("even", "#333333", "#ffffff"),
		odd:   pick("odd", "#0088a0", "#00c8f0"),
	}
}

// cells converts the included attrs of each row to text. Missing values print
// as "-".
func cells(dataset []map[string]interface{}, al attrs.AttrList) (headers []string, rows [][]string) {
	for _, a := range al {
		if a.Include {
			headers = append(headers, a.OutputKey)
		}
	}
	if len(headers) == 0 {
		return nil, nil
	}

	for _, r := range dataset {
		row := make([]string, 0, len(headers))
		for _, a := range al {
			if a.Include {
				row = append(row, InterfaceToString(r[a.OutputKey], "-"))
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// writeTable prints dataset as borderless columns. Nothing is written for an
// empty dataset.
func writeTable(w io.Writer, dataset []map[string]interface{}, al attrs.AttrList, opts tableOptions) {
	headers, rows := cells(dataset, al)
	if len(rows) == 0 {
		return
	}

	base := lipgloss.NewStyle().Align(lipgloss.Left)
	title, even, odd := base.Bold(true), base, base
	if opts.color {
		p := loadPalette(lipgloss.HasDarkBackground(os.Stdin, os.Stdout))
		title = title.Foreground(p.title)
		even = even.Foreground(p.even)
		odd = odd.Foreground(p.odd)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := odd
			if row == table.HeaderRow {
				s = title
			} else if row%2 == 0 {
				s = even
			}
			if col > 0 {
				s = s.PaddingLeft(opts.padding)
			}
			return s
		}).
		Rows(rows...)

	if opts.titles {
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}
