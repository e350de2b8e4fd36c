// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/awsctl/internal/log"
)

// schemaTag is one discovered attribute path of a response type, as emitted by
// --schema.
type schemaTag struct {
	Name string
	Type string
}

// maxSchemaDepth limits how far nested structs are expanded.
const maxSchemaDepth = 3

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema writes the sorted attribute paths of typ to w. The paths are
// valid --select and --attrs keys. If w is nil, os.Stdout is used.
func DumpSchema(prefix string, typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	fmt.Fprintf(w, "Attributes of %s, usable with --select and --attrs.\n\n", typ.Name())

	tags := dumpSchemaWalker(prefix, typ, 0)
	if len(tags) == 0 {
		log.Debugf("No attributes found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []string{tag.Name, tag.Type})
	}
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col > 0 {
				return lipgloss.NewStyle().PaddingLeft(2)
			}
			return lipgloss.NewStyle()
		}).
		Rows(rows...)
	fmt.Fprintln(w, t)
}

// dumpSchemaWalker recursively walks the exported fields of a struct type.
// Slices of structs are expanded with a # segment, the gjson idiom for "every
// element".
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)
	if typ.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Name == metadataKey {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + field.Name
		}
		tags = append(tags, schemaTag{Name: name, Type: typeName(field.Type)})

		if depth >= maxSchemaDepth {
			continue
		}

		elem := field.Type
		for elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		switch {
		case elem == timeType:
		case elem.Kind() == reflect.Struct:
			tags = append(tags, dumpSchemaWalker(name, elem, depth+1)...)
		case elem.Kind() == reflect.Slice:
			inner := elem.Elem()
			for inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct && inner != timeType {
				tags = append(tags, dumpSchemaWalker(name+".#", inner, depth+1)...)
			}
		default:
			log.Tracef("primitive field: %s %s", name, field.Type.Kind())
		}
	}

	return tags
}

// typeName returns a short display name for t, e.g. "[]Workgroup" or "*string".
func typeName(t reflect.Type) string {
	s := t.String()
	// Trim package qualifiers such as "types.".
	if i := strings.LastIndex(s, "."); i >= 0 {
		prefix := strings.TrimRight(s[:i], "abcdefghijklmnopqrstuvwxyz0123456789_")
		s = prefix + s[i+1:]
	}
	return s
}
