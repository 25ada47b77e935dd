package auth

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"person@example.org", true},
		{"first.last@example.org", true},
		{"person@", false},
		{"@example.org", false},
		{"not-an-email", false},
		{"two@@example.org", false},
		{"", false},
	}
	for _, c := range cases {
		if got := isValidEmail(c.value); got != c.want {
			t.Errorf("isValidEmail(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"citizen_42", true},
		{"A", true},
		{"with space", false},
		{"dash-ed", false},
		{"", false},
		{"punctuation!", false},
		{"abcdefghijklmnopqrstuvwxyz0123456789", false}, // over 32 chars
	}
	for _, c := range cases {
		if got := isValidUsername(c.value); got != c.want {
			t.Errorf("isValidUsername(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"exactly15chars!", true},
		{"a much longer passphrase", true},
		{"fourteen-chars", false},
		{"short", false},
		{"", false},
		// Whitespace doesn't count toward the minimum.
		{"   padded-pass   ", false},
	}
	for _, c := range cases {
		if got := isValidPassword(c.value); got != c.want {
			t.Errorf("isValidPassword(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestContainsNull(t *testing.T) {
	if !containsNull("bad\x00value") {
		t.Error("NUL byte not detected")
	}
	if containsNull("clean value") {
		t.Error("false positive on clean value")
	}
}
