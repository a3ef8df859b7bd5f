package logkick

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent runaway structures.
const maxDumpDepth = 10

// Dump logs the contents of v at Debug level under the given label. Structs
// contribute their exported fields, maps and slices their elements, and
// basic types their value. Pointers are followed with cycle protection.
// Intended for ad-hoc diagnostics; records pass through the normal filters.
func (l *Logger) Dump(label string, v any) {
	if l == nil || l.drain == nil {
		return
	}
	fields := make([]Field, 0, 8)
	visited := make(map[uintptr]bool)
	fields = dumpValue(fields, label, reflect.ValueOf(v), visited, 0)
	l.Debug("dump", fields...)
}

func dumpValue(fields []Field, path string, val reflect.Value, visited map[uintptr]bool, depth int) []Field {
	if depth > maxDumpDepth {
		return append(fields, Str(path, "<max depth>"))
	}
	if !val.IsValid() {
		return append(fields, Str(path, "<nil>"))
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return append(fields, Str(path, "<nil>"))
		}
		if val.Kind() == reflect.Pointer {
			ptr := val.Pointer()
			if visited[ptr] {
				return append(fields, Str(path, "<cycle>"))
			}
			visited[ptr] = true
		}
		return dumpValue(fields, path, val.Elem(), visited, depth+1)

	case reflect.Struct:
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = dumpValue(fields, path+"."+f.Name, val.Field(i), visited, depth+1)
		}
		return fields

	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			fields = dumpValue(fields, path+"."+key, iter.Value(), visited, depth+1)
		}
		return fields

	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			fields = dumpValue(fields, fmt.Sprintf("%s[%d]", path, i), val.Index(i), visited, depth+1)
		}
		return fields

	case reflect.String:
		return append(fields, Str(path, val.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return append(fields, Int64(path, val.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return append(fields, Uint64(path, val.Uint()))
	case reflect.Float32, reflect.Float64:
		return append(fields, Float64(path, val.Float()))
	case reflect.Bool:
		return append(fields, Bool(path, val.Bool()))
	default:
		return append(fields, Str(path, fmt.Sprintf("%v", val.Interface())))
	}
}
