package themefile

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glinterrors "github.com/glintui/glint/pkg/errors"
	"github.com/glintui/glint/pkg/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return len(name) <= 64 && themeNamePattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on a parsed definition. Built-in theme
// names are reserved; everything else is delegated to struct tags.
func Validate(def *Definition) error {
	if def == nil {
		return glinterrors.NewValidationError("theme", "definition is nil", nil)
	}

	switch def.Name {
	case theme.LightName, theme.DarkName, theme.SystemName:
		return glinterrors.NewValidationError("name", fmt.Sprintf("%q is a built-in theme name", def.Name), nil)
	}

	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return glinterrors.NewValidationError(field, msg, err)
	}

	return glinterrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
