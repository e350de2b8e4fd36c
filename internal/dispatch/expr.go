// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// exprSelector compiles an HCL expression into a transform selector. The
// expression is parsed eagerly so that syntax errors surface as argument
// errors before any remote call.
func exprSelector(src string) (Selector, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "select", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Selector{}, &ArgumentError{Param: "select", Msg: diags.Error()}
	}

	fn := func(response any, params Params) (any, error) {
		resp, err := toGeneric(response)
		if err != nil {
			return nil, err
		}
		in, err := toGeneric(params)
		if err != nil {
			return nil, err
		}

		ctx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"response": toCty(resp),
				"params":   toCty(in),
			},
			Functions: exprFunctions(),
		}

		val, diags := expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate selector: %s", diags.Error())
		}
		return fromCty(val), nil
	}

	return Selector{kind: KindTransform, source: "=" + src, fn: fn}, nil
}

// exprFunctions is the function table available to selector expressions.
func exprFunctions() map[string]function.Function {
	return map[string]function.Function{
		"abs":        stdlib.AbsoluteFunc,
		"max":        stdlib.MaxFunc,
		"min":        stdlib.MinFunc,
		"format":     stdlib.FormatFunc,
		"join":       stdlib.JoinFunc,
		"lower":      stdlib.LowerFunc,
		"replace":    stdlib.ReplaceFunc,
		"split":      stdlib.SplitFunc,
		"substr":     stdlib.SubstrFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"upper":      stdlib.UpperFunc,
		"coalesce":   stdlib.CoalesceFunc,
		"compact":    stdlib.CompactFunc,
		"concat":     stdlib.ConcatFunc,
		"contains":   stdlib.ContainsFunc,
		"distinct":   stdlib.DistinctFunc,
		"element":    stdlib.ElementFunc,
		"flatten":    stdlib.FlattenFunc,
		"keys":       stdlib.KeysFunc,
		"length":     stdlib.LengthFunc,
		"lookup":     stdlib.LookupFunc,
		"merge":      stdlib.MergeFunc,
		"reverse":    stdlib.ReverseListFunc,
		"sort":       stdlib.SortFunc,
		"values":     stdlib.ValuesFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"formatdate": stdlib.FormatDateFunc,
		"regex":      stdlib.RegexFunc,
		"try":        tryfunc.TryFunc,
		"can":        tryfunc.CanFunc,
	}
}

// toGeneric round-trips v through JSON so SDK structs become plain maps,
// slices and scalars.
func toGeneric(v any) (any, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selector input: %w", err)
	}
	var out any
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selector input: %w", err)
	}
	return out, nil
}

func toCty(v any) cty.Value {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case bool:
		return cty.BoolVal(v)
	case float64:
		return cty.NumberFloatVal(v)
	case string:
		return cty.StringVal(v)
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal
		}
		vals := make([]cty.Value, len(v))
		for i, item := range v {
			vals[i] = toCty(item)
		}
		return cty.TupleVal(vals)
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal
		}
		vals := make(map[string]cty.Value, len(v))
		for k, item := range v {
			vals[k] = toCty(item)
		}
		return cty.ObjectVal(vals)
	}
	return cty.StringVal(fmt.Sprintf("%v", v))
}

func fromCty(val cty.Value) any {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i
		}
		f, _ := bf.Float64()
		return f
	case ty == cty.String:
		return val.AsString()
	case ty.IsTupleType(), ty.IsListType(), ty.IsSetType():
		result := []any{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			result = append(result, fromCty(elem))
		}
		return result
	case ty.IsObjectType(), ty.IsMapType():
		result := map[string]any{}
		for it := val.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			result[k.AsString()] = fromCty(elem)
		}
		return result
	}
	return val.GoString()
}
