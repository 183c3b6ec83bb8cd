package fieldset

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// truthy mirrors form truthiness: nil, false, zero, NaN and "" are false,
// everything else is true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		if v == "" {
			return false
		}
		f, err := v.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem().Interface())
	default:
		return true
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
