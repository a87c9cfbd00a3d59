package validation

import (
	"testing"

	"github.com/kbukum/keyedi/errors"
)

type inner struct {
	Level string `mapstructure:"level" validate:"oneof=debug info"`
}

type sample struct {
	Name    string `mapstructure:"name" validate:"required"`
	Retries int    `mapstructure:"retries" validate:"min=1,max=5"`
	Logging inner  `mapstructure:"logging"`
	NoTag   string `validate:"required"`
}

func TestValidatePasses(t *testing.T) {
	s := sample{Name: "svc", Retries: 2, Logging: inner{Level: "info"}, NoTag: "x"}
	if err := Validate(&s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReportsConfigPaths(t *testing.T) {
	s := sample{Retries: 9, Logging: inner{Level: "loud"}}
	err := Validate(&s)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}
	got := make(map[string]string, len(fields))
	for _, f := range fields {
		got[f.Field] = f.Message
	}
	want := map[string]string{
		"name":          "is required",
		"retries":       "must be at most 5",
		"logging.level": "must be one of: debug info",
		"no_tag":        "is required",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, got[field])
		}
	}
}

func TestValidateNonStruct(t *testing.T) {
	err := Validate("not a struct")
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{"Name": "name", "NoTag": "no_tag", "IgnoreCase": "ignore_case"}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
