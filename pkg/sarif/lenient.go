package sarif

import (
	"bytes"
	"encoding/json"
	"math"
)

type object = map[string]any

// salvage re-encodes a document keeping only the fields findings are built
// from, each with its expected JSON type. A field of any other type is
// dropped so it resolves to its default. A non-object document has no runs.
func salvage(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}

	out := object{}
	if doc, ok := root.(object); ok {
		copyStrings(out, doc, "version")
		if runs, ok := doc["runs"].([]any); ok {
			out["runs"] = salvageEach(runs, salvageRun)
		}
	}
	return json.Marshal(out)
}

func salvageRun(run object) object {
	out := object{"tool": object{}}
	if tool, ok := run["tool"].(object); ok {
		copyObject(out["tool"].(object), tool, "driver", func(driver object) object {
			d := object{}
			copyStrings(d, driver, "name")
			if rules, ok := driver["rules"].([]any); ok {
				d["rules"] = salvageEach(rules, salvageRule)
			}
			return d
		})
	}
	if results, ok := run["results"].([]any); ok {
		out["results"] = salvageEach(results, salvageResult)
	}
	return out
}

func salvageRule(rule object) object {
	out := object{}
	copyStrings(out, rule, "id")
	copyObject(out, rule, "shortDescription", keepStrings("text"))
	copyObject(out, rule, "help", keepStrings("text", "markdown"))
	copyObject(out, rule, "defaultConfiguration", keepStrings("level"))
	return out
}

func salvageResult(result object) object {
	out := object{"message": object{}}
	copyStrings(out, result, "ruleId", "level")
	copyObject(out, result, "message", keepStrings("text"))
	if locs, ok := result["locations"].([]any); ok {
		out["locations"] = salvageEach(locs, salvageLocation)
	}
	return out
}

func salvageLocation(loc object) object {
	out := object{}
	copyObject(out, loc, "physicalLocation", func(pl object) object {
		p := object{}
		copyObject(p, pl, "artifactLocation", keepStrings("uri"))
		copyObject(p, pl, "region", func(region object) object {
			r := object{}
			if n, ok := wholeNumber(region["startLine"]); ok {
				r["startLine"] = n
			}
			return r
		})
		return p
	})
	return out
}

// salvageEach maps object elements through fn; anything else becomes null.
func salvageEach(items []any, fn func(object) object) []any {
	out := make([]any, len(items))
	for i, item := range items {
		if obj, ok := item.(object); ok {
			out[i] = fn(obj)
		}
	}
	return out
}

func copyStrings(dst, src object, keys ...string) {
	for _, key := range keys {
		if s, ok := src[key].(string); ok {
			dst[key] = s
		}
	}
}

func copyObject(dst, src object, key string, fn func(object) object) {
	if obj, ok := src[key].(object); ok {
		dst[key] = fn(obj)
	}
}

func keepStrings(keys ...string) func(object) object {
	return func(src object) object {
		out := object{}
		copyStrings(out, src, keys...)
		return out
	}
}

// wholeNumber accepts integral numbers in any notation, e.g. 42 or 42.0.
func wholeNumber(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int64(f), true
}
