package normalize

import "testing"

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01012345678", "010-1234-5678"},
		{"010-1234-5678", "010-1234-5678"},
		{"010 1234 5678", "010-1234-5678"},
		{"(010) 1234-5678", "010-1234-5678"},
		{"0111234567", "011-123-4567"},
		{"0212345678", "02-1234-5678"},
		{"021234567", "02-123-4567"},
		{"+82 10 1234 5678", "+821012345678"},
		{"1-801-555-0100", "18015550100"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Kim   Ji-woo ", "Kim Ji-woo"},
		{"이민준", "이민준"},
		{"a\tb\nc", "a b c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if got := Email("  JiWoo@Example.COM "); got != "jiwoo@example.com" {
		t.Errorf("Email() = %q", got)
	}
}

func TestRole(t *testing.T) {
	if got := Role(" Admin "); got != "admin" {
		t.Errorf("Role() = %q", got)
	}
}

func TestGraduationYear(t *testing.T) {
	if got := GraduationYear(" 2019-2020 "); got != "2019-2020" {
		t.Errorf("GraduationYear() = %q", got)
	}
}
