// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/awsctl/internal/log"
)

// LocalLayout is the layout of timestamps converted by the t transform.
const LocalLayout = "2006-01-02T15:04:05MST"

// Attr is one column of shaped output. Key is a path into the JSON form of a
// response row, e.g. "WorkgroupName" or "Endpoint.Address".
type Attr struct {
	Key string `yaml:"key" json:"Key"`
	// Include is false for attrs that only take part in filtering and
	// sorting.
	Include bool `yaml:"include" json:"Include"`
	// OutputKey names the value in json and yaml output and titles the
	// column in text output.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// TransformSpec is a string of transform letters and lengths, see
	// Transform.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// transform is a parsed TransformSpec. Later entries in the spec override
// earlier ones, so a global spec prepended to an attr's own spec loses.
type transform struct {
	clock  byte // 't' local time, 'T' time ago
	letter byte // 'l' or 'u'
	length int  // >0 truncates, <0 elides the middle
	arn    bool
	comma  bool
}

func parseTransform(spec string) transform {
	var tr transform
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		switch {
		case c == '-' || isDigit(c):
			j := i + 1
			for j < len(spec) && isDigit(spec[j]) {
				j++
			}
			if n, err := strconv.Atoi(spec[i:j]); err == nil {
				tr.length = n
			}
			i = j - 1
		case c == 't' || c == 'T':
			tr.clock = c
		case c == 'l' || c == 'L':
			tr.letter = 'l'
		case c == 'u' || c == 'U':
			tr.letter = 'u'
		case c == 'a' || c == 'A':
			tr.arn = true
		case c == 'n' || c == 'N':
			tr.comma = true
		}
	}
	return tr
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Transform applies the attr's TransformSpec to value.
//
//	t   timestamp in the local zone
//	T   timestamp as time ago
//	l u lower or upper case
//	a   resource part of an ARN
//	n   numbers with thousands separators
//	N   truncate to N characters, -N elides the middle
//
// Objects, arrays and booleans pass through unchanged.
func (a *Attr) Transform(value interface{}) interface{} {
	if a.TransformSpec == "" {
		return value
	}
	tr := parseTransform(a.TransformSpec)

	switch v := value.(type) {
	case string:
		return tr.text(v)
	case float64:
		if tr.comma {
			return commas(v)
		}
		return v
	default:
		log.Tracef("transform skipped: type=%T", value)
		return value
	}
}

func (tr transform) text(s string) string {
	if tr.arn {
		s = arnResource(s)
	}

	if tr.clock != 0 {
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			if tr.clock == 'T' {
				s = humanize.Time(ts)
			} else {
				s = ts.In(time.Local).Format(LocalLayout)
			}
			log.Tracef("time transformed: result=%s", s)
		}
	}

	switch tr.letter {
	case 'l':
		s = strings.ToLower(s)
	case 'u':
		s = strings.ToUpper(s)
	}

	if tr.comma {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			s = commas(f)
		}
	}

	return shorten(s, tr.length)
}

// arnResource returns the resource part of an ARN, e.g. "namespace/abc" for
// arn:aws:redshift-serverless:us-east-1:123456789012:namespace/abc. Other
// strings are returned as is.
func arnResource(s string) string {
	if !strings.HasPrefix(s, "arn:") {
		return s
	}
	parts := strings.SplitN(s, ":", 6)
	if len(parts) < 6 {
		return s
	}
	return parts[5]
}

func commas(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return humanize.Comma(int64(f))
	}
	return humanize.Commaf(f)
}

func shorten(s string, n int) string {
	width := n
	if width < 0 {
		width = -width
	}
	if n == 0 || len(s) <= width {
		return s
	}

	keep := width/2 - 1
	if n > 0 || keep < 1 {
		return s[:width]
	}
	return s[:keep] + ".." + s[len(s)-keep:]
}

// AttrList is the ordered set of Attr shaping one command's output. It
// implements flag.Value for --attrs.
type AttrList []Attr

// Set parses a comma separated list of key[:outputKey[:transform]] specs.
// A key starting with ! is hidden, and the key * holds a transform applied to
// every attr by SetGlobalTransformSpec. A spec naming an attr already in the
// list updates it in place.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	for _, spec := range strings.Split(value, ",") {
		attr := parseAttr(spec)
		if i := a.index(attr.Key); i >= 0 {
			(*a)[i].Include = attr.Include
			(*a)[i].OutputKey = attr.OutputKey
			(*a)[i].TransformSpec = attr.TransformSpec
			log.Tracef("attr updated: key=%s", attr.Key)
			continue
		}
		*a = append(*a, attr)
		log.Tracef("attr added: key=%s out=%s spec=%s", attr.Key, attr.OutputKey, attr.TransformSpec)
	}

	return nil
}

func parseAttr(spec string) Attr {
	fields := strings.SplitN(spec, ":", 3)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	key, hidden := strings.CutPrefix(fields[0], "!")
	key = strings.TrimPrefix(key, ".")
	attr := Attr{Key: key, Include: !hidden && key != "*"}

	switch {
	case len(fields) == 1:
		attr.OutputKey = key[strings.LastIndex(key, ".")+1:]
	case fields[1] == "":
		attr.OutputKey = key
	default:
		attr.OutputKey = fields[1]
	}

	if len(fields) == 3 {
		attr.TransformSpec = fields[2]
	}
	return attr
}

// index finds the attr whose key or output key matches key, ignoring case.
func (a AttrList) index(key string) int {
	for i := range a {
		if strings.EqualFold(a[i].Key, key) || strings.EqualFold(a[i].OutputKey, key) {
			return i
		}
	}
	return -1
}

// SetGlobalTransformSpec prepends the transform of the first * attr to every
// attr's TransformSpec.
func (a *AttrList) SetGlobalTransformSpec() error {
	i := a.index("*")
	if i < 0 || (*a)[i].TransformSpec == "" {
		return nil
	}

	global := (*a)[i].TransformSpec
	log.Debugf("global transform: spec=%s", global)
	for j := range *a {
		(*a)[j].TransformSpec = global + "," + (*a)[j].TransformSpec
	}
	return nil
}

// String formats the list the way --attrs takes it.
func (a *AttrList) String() string {
	specs := make([]string, len(*a))
	for i, attr := range *a {
		specs[i] = fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec)
	}
	return strings.Join(specs, ",")
}

// Type implements flag.Value.
func (a *AttrList) Type() string { return "list" }
