package service

import "testing"

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		submission string
		want       bool
	}{
		{"exact match", "Paris", "Paris", true},
		{"case insensitive", "Paris", "paris", true},
		{"surrounding whitespace", "Paris", "  paris ", true},
		{"internal whitespace collapsed", "New  York", "new york", true},
		{"tabs and newlines", "New York", "new\tyork\n", true},
		{"punctuation is significant", "Paris", "paris,", false},
		{"different answer", "Paris", "London", false},
		{"empty submission", "Paris", "", false},
		{"both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrect(tt.submission, tt.answer); got != tt.want {
				t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.submission, tt.answer, got, tt.want)
			}
		})
	}
}
