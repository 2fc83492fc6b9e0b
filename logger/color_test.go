package logger

import "testing"

func TestColor_Redf(t *testing.T) {
	c := &Color{NoColor: false}
	result := c.Redf("test %s", "message")
	expected := "\033[31mtest message\033[0m"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}

	c.NoColor = true
	result = c.Redf("test %s", "message")
	expected = "test message"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestColor_Greenf(t *testing.T) {
	c := &Color{NoColor: false}
	result := c.Greenf("test %s", "message")
	expected := "\033[32mtest message\033[0m"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}

	c.NoColor = true
	result = c.Greenf("test %s", "message")
	expected = "test message"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestColor_Cyanf(t *testing.T) {
	c := &Color{NoColor: false}
	result := c.Cyanf("test %s", "message")
	expected := "\033[36mtest message\033[0m"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}

	c.NoColor = true
	result = c.Cyanf("test %s", "message")
	expected = "test message"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestColor_Success(t *testing.T) {
	c := &Color{NoColor: false}
	if got, want := c.Success("done"), "\033[32m✔\033[0m done"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	c.NoColor = true
	if got, want := c.Success("done"), "✔ done"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestColor_Failure(t *testing.T) {
	c := &Color{NoColor: false}
	if got, want := c.Failure("failed"), "\033[31m✖\033[0m failed"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	c.NoColor = true
	if got, want := c.Failure("failed"), "✖ failed"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
