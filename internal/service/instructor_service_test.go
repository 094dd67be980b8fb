package service

import "testing"

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		marks int
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{50, "D"},
		{49, "E"},
		{40, "E"},
		{39, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := letterGrade(tt.marks); got != tt.want {
			t.Errorf("letterGrade(%d) = %q, want %q", tt.marks, got, tt.want)
		}
	}
}

func TestPassFail(t *testing.T) {
	if got := passFail(40); got != "Pass" {
		t.Errorf("passFail(40) = %q, want Pass", got)
	}
	if got := passFail(39); got != "Fail" {
		t.Errorf("passFail(39) = %q, want Fail", got)
	}
}
