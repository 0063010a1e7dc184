package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/overlay/internal/panel"
	"github.com/alexisbeaulieu97/overlay/internal/theme"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := theme.Named(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("panel_state", func(fl validator.FieldLevel) bool {
			_, err := panel.ParseState(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return overlayerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	floor := cfg.Panel.HostMinHeight + cfg.Panel.SliderHeight
	if cfg.Panel.HalfHeight <= floor {
		return overlayerrors.NewValidationError("panel.half_height",
			fmt.Sprintf("must exceed host_min_height + slider_height (%g)", floor), nil)
	}

	if cfg.Colors != nil {
		if err := cfg.Colors.Validate(); err != nil {
			return overlayerrors.NewValidationError("colors", err.Error(), err)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into overlay validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return overlayerrors.NewValidationError(field, msg, err)
	}

	return overlayerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the dotted yaml path.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
