package core

import (
	"errors"
	"testing"
)

func TestValidationf(t *testing.T) {
	err := Validationf("op.Thing", "bad value %d", 7)
	if err.Error() != "op.Thing: bad value 7" {
		t.Fatalf("Error = %q", err.Error())
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("not a *ValidationError")
	}
	if verr.Op != "op.Thing" {
		t.Fatalf("Op = %q", verr.Op)
	}
}

func TestBackendNilPassThrough(t *testing.T) {
	if err := Backend("op", nil); err != nil {
		t.Fatalf("Backend(nil) = %v, want nil", err)
	}
}

func TestBackendWraps(t *testing.T) {
	cause := errors.New("out of memory")
	err := Backend("gfx.Copy", cause)

	var berr *BackendError
	if !errors.As(err, &berr) {
		t.Fatal("not a *BackendError")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	if err.Error() != "gfx.Copy: out of memory" {
		t.Fatalf("Error = %q", err.Error())
	}
}

func TestBackendf(t *testing.T) {
	err := Backendf("op", "handle was %v", nil)
	var berr *BackendError
	if !errors.As(err, &berr) {
		t.Fatal("not a *BackendError")
	}
	if berr.Err == nil {
		t.Fatal("Backendf left Err nil")
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	verr := Validationf("op", "reason")
	var berr *BackendError
	if errors.As(verr, &berr) {
		t.Fatal("ValidationError matched *BackendError")
	}
}
