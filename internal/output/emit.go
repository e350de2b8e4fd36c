// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/awsctl/internal/attrs"
	"github.com/tfctl/awsctl/internal/filters"
)

// metadataKey is the SDK's per-response bookkeeping field. It never carries
// anything worth printing.
const metadataKey = "ResultMetadata"

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// Emit renders value according to the output flags of cmd and writes it to w.
//
// Scalars are printed as-is. Objects and arrays of objects become rows that
// are shaped by --attrs, --filter and --sort, then printed as a table (text)
// or as a document (json, yaml). Without any shaping flags json and yaml
// print the whole value. raw always prints the unshaped JSON.
func Emit(w io.Writer, value any, cmd *cli.Command) error {
	if w == nil {
		w = os.Stdout
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	doc := prune(gjson.ParseBytes(raw))
	log.Debugf("emit: type=%s", doc.Type)

	format := cmd.String("output")
	if format == "raw" {
		_, err := fmt.Fprintln(w, doc.Raw)
		return err
	}

	// Null and scalars have nothing to shape.
	if !doc.IsObject() && !doc.IsArray() {
		return writeScalar(w, doc, format)
	}

	shaping := cmd.String("attrs") != "" || cmd.String("filter") != "" || cmd.String("sort") != ""
	if format != "text" && !shaping {
		return writeDocument(w, doc, format)
	}

	rows := doc
	if doc.IsObject() {
		rows = gjson.Parse("[" + doc.Raw + "]")
	}

	// Lists of scalars print one per line.
	if first := rows.Get("0"); first.Exists() && !first.IsObject() {
		if format != "text" {
			return writeDocument(w, rows, format)
		}
		for _, item := range rows.Array() {
			fmt.Fprintln(w, InterfaceToString(item.Value(), "-"))
		}
		return nil
	}

	al := BuildAttrs(cmd, defaultAttrs(rows)...)
	dataset := filters.FilterDataset(rows, al, cmd.String("filter"))

	if cmd.Bool("local") {
		for a := range al {
			al[a].TransformSpec += "t"
		}
	}

	// Transform each value in each row.
	for _, row := range dataset {
		for _, attr := range al {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}

	SortDataset(dataset, cmd.String("sort"))

	switch format {
	case "json":
		out, err := json.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	writeTable(w, dataset, al, tableOptions{
		titles:  cmd.Bool("titles"),
		color:   cmd.Bool("color"),
		padding: cmd.Int("padding"),
	})
	return nil
}

// defaultAttrs lists the top level keys of the first row, in document order,
// as root-relative attribute specs.
func defaultAttrs(rows gjson.Result) []string {
	var keys []string
	rows.Get("0").ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

// prune drops null members of every object and the SDK ResultMetadata member
// of a top level object, preserving key order. Unset optional fields of a
// response are therefore absent from the output rather than null.
func prune(doc gjson.Result) gjson.Result {
	if !doc.IsObject() && !doc.IsArray() {
		return doc
	}
	return gjson.Parse(pruneRaw(doc, true))
}

func pruneRaw(r gjson.Result, top bool) string {
	var b strings.Builder

	switch {
	case r.IsObject():
		b.WriteByte('{')
		first := true
		r.ForEach(func(k, v gjson.Result) bool {
			if v.Type == gjson.Null || (top && k.String() == metadataKey) {
				return true
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(k.Raw)
			b.WriteByte(':')
			b.WriteString(pruneRaw(v, false))
			return true
		})
		b.WriteByte('}')
	case r.IsArray():
		b.WriteByte('[')
		for i, item := range r.Array() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(pruneRaw(item, false))
		}
		b.WriteByte(']')
	default:
		return r.Raw
	}

	return b.String()
}

func writeScalar(w io.Writer, doc gjson.Result, format string) error {
	switch format {
	case "json":
		_, err := fmt.Fprintln(w, doc.Raw)
		return err
	case "yaml":
		return writeDocument(w, doc, format)
	}
	if doc.Type == gjson.Null {
		return nil
	}
	_, err := fmt.Fprintln(w, InterfaceToString(doc.Value(), ""))
	return err
}

// writeDocument prints doc as indented JSON or as YAML, keeping the key order
// of the response.
func writeDocument(w io.Writer, doc gjson.Result, format string) error {
	if format == "yaml" {
		out, err := yaml.Marshal(toMapSlice(doc))
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(doc.Raw), "", "  "); err != nil {
		return fmt.Errorf("failed to indent json output: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// toMapSlice converts a gjson value to ordered yaml.v2 structures.
func toMapSlice(r gjson.Result) interface{} {
	switch {
	case r.IsObject():
		ms := yaml.MapSlice{}
		r.ForEach(func(k, v gjson.Result) bool {
			ms = append(ms, yaml.MapItem{Key: k.String(), Value: toMapSlice(v)})
			return true
		})
		return ms
	case r.IsArray():
		items := []interface{}{}
		for _, v := range r.Array() {
			items = append(items, toMapSlice(v))
		}
		return items
	}
	return r.Value()
}
