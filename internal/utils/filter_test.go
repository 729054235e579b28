package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hello", true},
		{"hello-world", true},
		{"foo_bar", true},
		{"abc123", true},
		{"", false},
		{"12345", false},
		{"he!lo", false},
		{"aaa", false},
		{"www", false},
		{"aa", true}, // two repeats are fine
	}
	for _, tt := range tests {
		if got := IsValidInput(tt.in); got != tt.want {
			t.Errorf("IsValidInput(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsRepetitive(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"aaa", true},
		{"aaaa", true},
		{"aab", false},
		{"ab", false},
		{"a", false},
	}
	for _, tt := range tests {
		if got := IsRepetitive(tt.in); got != tt.want {
			t.Errorf("IsRepetitive(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
