package schema

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/iancoleman/strcase"
)

var timeType = reflect.TypeOf(time.Time{})

// SchemaFromStruct builds a row schema from the exported fields of a struct
// column names default to the snake case field name, prefixed with `<prefix>_` if a prefix is given
// the `column` tag may override the name and type - fields of interface type must declare a type
func SchemaFromStruct(prefix string, s any) (*RowSchema, error) {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", t.Kind())
	}

	var res = &RowSchema{}
	var errorList []error
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		var tag = &ColumnTag{}
		if tagString := field.Tag.Get("column"); tagString != "" {
			var err error
			tag, err = ParseColumnTag(tagString)
			if err != nil {
				errorList = append(errorList, fmt.Errorf("field %s: %w", field.Name, err))
				continue
			}
			if tag.Skip {
				continue
			}
		}

		// if the tag does not specify a name, use the field name
		name := tag.Name
		if name == "" {
			name = strcase.ToSnake(field.Name)
		}
		if prefix != "" {
			name = fmt.Sprintf("%s_%s", prefix, name)
		}

		columnType := tag.Type
		if columnType == "" {
			var err error
			columnType, err = columnTypeOf(field.Type)
			if err != nil {
				errorList = append(errorList, fmt.Errorf("failed to get schema for field %s: %w", field.Name, err))
				continue
			}
		}

		res.Columns = append(res.Columns, &ColumnSchema{
			SourceName: field.Name,
			ColumnName: name,
			Type:       columnType,
		})
	}

	if len(errorList) > 0 {
		return nil, errors.Join(errorList...)
	}
	return res, nil
}

// ValuesFromStruct returns the exported, non-skipped field values of a struct in schema order
// nil pointers become missing values and all integer and float kinds are widened
func ValuesFromStruct(s any) []any {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []any
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("column") == "-" {
			continue
		}
		res = append(res, cellValue(v.Field(i)))
	}
	return res
}

func cellValue(v reflect.Value) any {
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String()
	default:
		return v.Interface()
	}
}

func columnTypeOf(t reflect.Type) (string, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return TypeBoolean, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeBigint, nil
	case reflect.Float32, reflect.Float64:
		return TypeDouble, nil
	case reflect.String:
		return TypeVarchar, nil
	case reflect.Struct:
		if t == timeType {
			return TypeTimestamp, nil
		}
	}
	return "", fmt.Errorf("unsupported type %s", t)
}
