// Package validation checks typed records against their `validate` tags before
// they are written anywhere.
package validation

import (
	"reflect"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord marks every failure returned by Struct.
var ErrInvalidRecord = crerr.New("invalid record")

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct validates record and reports offending fields by their JSON names.
func Struct(record any) error {
	err := get().Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !crerr.As(err, &fieldErrs) {
		return crerr.Mark(crerr.Wrap(err, "validate record"), ErrInvalidRecord)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		part := fe.Namespace() + " failed " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}
	return crerr.Mark(crerr.Newf("%s", strings.Join(parts, "; ")), ErrInvalidRecord)
}
