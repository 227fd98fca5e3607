package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Query is a filter object expanded into a query string. Falsy values (empty
// strings, zero numbers, false, nil, empty slices) are left out entirely.
type Query map[string]interface{}

// Encode renders the truthy entries, URL-encoded and sorted by key.
func (q Query) Encode() string {
	values := url.Values{}
	for key, value := range q {
		if key == "" {
			continue
		}
		if s, ok := queryValue(value); ok {
			values.Set(key, s)
		}
	}
	return values.Encode()
}

func queryValue(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.IsZero() {
		return "", false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s, ok := queryValue(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ","), true
	case reflect.Map, reflect.Struct, reflect.Func, reflect.Chan:
		return "", false
	}
	if stringer, ok := rv.Interface().(fmt.Stringer); ok {
		s := stringer.String()
		return s, s != ""
	}
	return fmt.Sprint(rv.Interface()), true
}

// withQuery appends the encoded query to path when it is not empty.
func withQuery(path string, q Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// pathf builds an endpoint with every argument path-escaped.
func pathf(format string, ids ...string) string {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
