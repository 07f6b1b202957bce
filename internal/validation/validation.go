// Package validation registers the custom binding tags used by request models.
package validation

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fitbyte-be/internal/entities"
)

var httpURLPattern = regexp.MustCompile(`^https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(:[0-9]+)?(/[^\s]*)?$`)

var registerOnce sync.Once

// Register installs the custom tags on gin's default validator. Safe to call repeatedly.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = RegisterOn(v)
	})
	return err
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"activitytype": func(fl validator.FieldLevel) bool {
			return entities.IsValidActivityType(fl.Field().String())
		},
		"rfc3339": func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.RFC3339, fl.Field().String())
			return err == nil
		},
		"httpurl": func(fl validator.FieldLevel) bool {
			return IsHTTPURL(fl.Field().String())
		},
		"preference": func(fl validator.FieldLevel) bool {
			return entities.IsValidPreference(fl.Field().String())
		},
		"weightunit": func(fl validator.FieldLevel) bool {
			return entities.IsValidWeightUnit(fl.Field().String())
		},
		"heightunit": func(fl validator.FieldLevel) bool {
			return entities.IsValidHeightUnit(fl.Field().String())
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validator: %w", tag, err)
		}
	}
	return nil
}

// IsHTTPURL reports whether uri is an absolute http(s) URL with a dotted host.
func IsHTTPURL(uri string) bool {
	return httpURLPattern.MatchString(uri)
}
