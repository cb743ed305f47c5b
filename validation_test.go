package finance

import (
	"errors"
	"testing"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		input        string
		allowDefault bool
		want         Date
		err          error
	}{
		{"15-01-2025", false, NewDate(2025, 1, 15), nil},
		{"15-01-2025", true, NewDate(2025, 1, 15), nil},
		{"", true, Today(), nil},
		{"  ", true, Today(), nil},
		{"", false, Date{}, ErrInvalidDate},
		{"2025/01/15", true, Date{}, ErrInvalidDate},
		{"32-01-2025", true, Date{}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateDate(tt.input, tt.allowDefault)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ValidateDate(%q, %v) error = %v, want %v", tt.input, tt.allowDefault, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ValidateDate(%q, %v) = %v, want %v", tt.input, tt.allowDefault, got, tt.want)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   error
	}{
		{"100", "100", nil},
		{" 12.50 ", "12.5", nil},
		{"0.01", "0.01", nil},
		{"0", "0", ErrNonPositiveAmount},
		{"-5", "0", ErrNonPositiveAmount},
		{"abc", "0", ErrInvalidAmount},
		{"1,5", "0", ErrInvalidAmount},
		{"", "0", ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateAmount(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ValidateAmount(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ValidateAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		err   error
	}{
		{"I", Income, nil},
		{"i", Income, nil},
		{"E", Expense, nil},
		{" e ", Expense, nil},
		{"income", Income, nil},
		{"Expense", Expense, nil},
		{"X", "", ErrInvalidCategory},
		{"", "", ErrInvalidCategory},
		{"IE", "", ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateCategory(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ValidateCategory(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ValidateCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	_, err := ValidateAmount("zero")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("ValidateAmount() error = %v, want a *ValidationError", err)
	}
	if ve.Field != "amount" || ve.Input != "zero" {
		t.Errorf("ValidationError = %+v, want field amount and input zero", ve)
	}
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rent, march\r\n", "rent, march"},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\nb\n\n", "a\nb"},
		{"  spaces kept  ", "  spaces kept  "},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ValidateDescription(tt.input); got != tt.want {
			t.Errorf("ValidateDescription(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
