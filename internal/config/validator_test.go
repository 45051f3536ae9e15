package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	kiterrors "github.com/statuskit/statuskit/pkg/errors"
)

func validDocument() *Document {
	return &Document{
		Version: "1.0",
		Name:    "dev-environment",
		Checks: []Check{
			{
				ID:            "git_installed",
				Type:          "command_exists",
				CommandExists: &CommandExistsCheck{Command: "git"},
			},
		},
	}
}

func TestValidateDocumentAccepted(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDocument(validDocument()))
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	err := ValidateDocument(nil)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateDocumentSchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{"missing version", func(d *Document) { d.Version = "" }},
		{"bad semver", func(d *Document) { d.Version = "not-a-version" }},
		{"missing name", func(d *Document) { d.Name = "" }},
		{"no checks", func(d *Document) { d.Checks = nil }},
		{"bad check id", func(d *Document) { d.Checks[0].ID = "Has Spaces" }},
		{"unknown type", func(d *Document) { d.Checks[0].Type = "reboot" }},
		{"bad severity", func(d *Document) { d.Checks[0].Severity = "fatal" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := validDocument()
			tt.mutate(doc)

			err := ValidateDocument(doc)

			var validationErr *kiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateDocumentDuplicateIDs(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Checks = append(doc.Checks, Check{
		ID:            "git_installed",
		Type:          "command_exists",
		CommandExists: &CommandExistsCheck{Command: "git"},
	})

	err := ValidateDocument(doc)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "checks[1].id", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate check id")
}

func TestValidateDocumentPayloadRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		check     Check
		wantField string
	}{
		{
			"file_exists without path",
			Check{ID: "c1", Type: "file_exists", FileExists: &FileExistsCheck{}},
			"checks[0].path",
		},
		{
			"command_exists without command",
			Check{ID: "c1", Type: "command_exists"},
			"checks[0].command",
		},
		{
			"env_set without variable",
			Check{ID: "c1", Type: "env_set", EnvSet: &EnvSetCheck{}},
			"checks[0].variable",
		},
		{
			"path_contains without entry",
			Check{ID: "c1", Type: "path_contains", PathContains: &PathContainsCheck{}},
			"checks[0].entry",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := &Document{Version: "1.0", Name: "n", Checks: []Check{tt.check}}

			err := ValidateDocument(doc)

			var validationErr *kiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
