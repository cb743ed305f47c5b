package finance

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"300", "USD", "$300.00"},
		{"1234.5", "USD", "$1,234.50"},
		{"0.005", "USD", "$0.01"},
		{"-50", "USD", "-$50.00"},
		{"12", "JPY", "¥12"},
		{"10", "NOPE", "$10.00"}, // unknown currencies are displayed as USD
	}
	for _, tt := range tests {
		t.Run(tt.value+tt.currency, func(t *testing.T) {
			if got := M(dec(tt.value), tt.currency).String(); got != tt.want {
				t.Errorf("M(%s, %s).String() = %q, want %q", tt.value, tt.currency, got, tt.want)
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(dec("0"), "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := M(dec("5"), "USD").SignedString(); got != "+$5.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$5.00")
	}
}
