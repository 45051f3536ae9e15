package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	kiterrors "github.com/statuskit/statuskit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	checkIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("check_id", func(fl validator.FieldLevel) bool {
			return checkIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on the
// checkup document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return kiterrors.NewValidationError("document", "checkup document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	checkIndex := make(map[string]int, len(doc.Checks))

	for i, check := range doc.Checks {
		if _, exists := checkIndex[check.ID]; exists {
			return kiterrors.NewValidationError(fieldForCheck(i, "id"), fmt.Sprintf("duplicate check id %q", check.ID), nil)
		}
		checkIndex[check.ID] = i

		if err := validatePayload(i, &check); err != nil {
			return err
		}
	}

	return nil
}

// validatePayload enforces the per-type required fields that inline YAML
// decoding cannot express as struct tags.
func validatePayload(index int, check *Check) error {
	switch check.Type {
	case "file_exists":
		if check.FileExists == nil || check.FileExists.Path == "" {
			return kiterrors.NewValidationError(fieldForCheck(index, "path"), "file_exists checks require a path", nil)
		}
	case "command_exists":
		if check.CommandExists == nil || check.CommandExists.Command == "" {
			return kiterrors.NewValidationError(fieldForCheck(index, "command"), "command_exists checks require a command", nil)
		}
	case "env_set":
		if check.EnvSet == nil || check.EnvSet.Variable == "" {
			return kiterrors.NewValidationError(fieldForCheck(index, "variable"), "env_set checks require a variable", nil)
		}
	case "path_contains":
		if check.PathContains == nil || check.PathContains.Entry == "" {
			return kiterrors.NewValidationError(fieldForCheck(index, "entry"), "path_contains checks require an entry", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into statuskit
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kiterrors.NewValidationError(field, msg, err)
	}

	return kiterrors.NewValidationError("document", err.Error(), err)
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

func fieldForCheck(index int, field string) string {
	return fmt.Sprintf("checks[%d].%s", index, field)
}
