package http

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Params is an ordered set of name/value pairs. Setting an existing name
// replaces its value in place.
type Params struct {
	keys   []string
	values map[string]any
}

func NewParams() *Params {
	return &Params{values: map[string]any{}}
}

func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = map[string]any{}
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON writes the params as a JSON object in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range p.Keys() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.WriteVal(p.values[key])
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// BuildPathWithParams appends params to path as a query string. Slices
// become repeated key[]=value pairs; nil, "", false and NaN become key=.
func BuildPathWithParams(path string, params *Params) string {
	var b strings.Builder
	b.WriteString(path)

	sep := byte('?')
	for _, key := range params.Keys() {
		value := params.values[key]

		if values, ok := sliceValues(value); ok {
			for _, v := range values {
				b.WriteByte(sep)
				sep = '&'
				b.WriteString(key)
				b.WriteString("[]=")
				if v != nil {
					b.WriteString(EncodeURIComponent(stringify(v)))
				}
			}
			continue
		}

		b.WriteByte(sep)
		sep = '&'
		b.WriteString(key)
		b.WriteByte('=')
		if !falsy(value) {
			b.WriteString(EncodeURIComponent(stringify(value)))
		}
	}

	return b.String()
}

var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes everything but A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EncodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}

func sliceValues(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, []byte, string:
		return nil, false
	case []any:
		return v, v != nil
	case []string:
		if v == nil {
			return nil, false
		}
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Kind() == reflect.Slice && rv.IsNil():
		return nil, false
	case rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func falsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return true
		}
		return falsy(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case float64:
		return formatNumber(v, 64)
	case float32:
		return formatNumber(float64(v), 32)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		switch rv.Elem().Kind() {
		case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		default:
			return stringify(rv.Elem().Interface())
		}
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}

// formatNumber prints f the way a JavaScript Number converts to string.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
