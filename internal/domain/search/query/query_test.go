package query

import "testing"

func TestText_AppendsHourlyFlag(t *testing.T) {
	q := New("Python, Data Analysis", "United States")
	want := "Python, Data Analysis United States True"
	if q.Text() != want {
		t.Errorf("Text() = %q, want %q", q.Text(), want)
	}
}

func TestText_Empty(t *testing.T) {
	q := New("", "")
	if q.Text() != "  True" {
		t.Errorf("Text() = %q", q.Text())
	}
}
