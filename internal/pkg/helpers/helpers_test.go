package helpers

import (
	"testing"
	"time"
)

func TestNullIfEmpty(t *testing.T) {
	empty := ""
	value := "Ana"

	if got := NullIfEmpty(nil); got != nil {
		t.Errorf("NullIfEmpty(nil) = %v, want nil", *got)
	}
	if got := NullIfEmpty(&empty); got != nil {
		t.Errorf("NullIfEmpty(\"\") = %q, want nil", *got)
	}

	got := NullIfEmpty(&value)
	if got == nil || *got != "Ana" {
		t.Fatalf("NullIfEmpty(%q) = %v, want %q", value, got, value)
	}
	if got == &value {
		t.Error("NullIfEmpty returned the input pointer")
	}
}

func TestNullIfZero(t *testing.T) {
	zero := int64(0)
	one := int64(1)

	if got := NullIfZero(&zero); got != nil {
		t.Errorf("NullIfZero(0) = %d, want nil", *got)
	}
	if got := NullIfZero(&one); got == nil || *got != 1 {
		t.Errorf("NullIfZero(1) = %v, want 1", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("3s", time.Second); got != 3*time.Second {
		t.Errorf("ParseDuration(3s) = %v", got)
	}
	if got := ParseDuration("soon", time.Second); got != time.Second {
		t.Errorf("ParseDuration(soon) = %v, want default", got)
	}
}
