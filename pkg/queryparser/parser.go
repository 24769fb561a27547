package queryparser

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTarget = errors.New("target must be a pointer to struct")

var durationType = reflect.TypeOf(time.Duration(0))

// Parse fills the fields of target tagged with `query:"name"` from values.
// Absent or empty parameters leave the field untouched, so callers set defaults beforehand.
func Parse(values url.Values, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		tag := rt.Field(i).Tag.Get("query")
		if tag == "" || !field.CanSet() {
			continue
		}

		raw := strings.TrimSpace(values.Get(tag))
		if raw == "" {
			continue
		}

		if err := set(field, raw); err != nil {
			return fmt.Errorf("invalid %s parameter: %w", tag, err)
		}
	}

	return nil
}

func set(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(v)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}
