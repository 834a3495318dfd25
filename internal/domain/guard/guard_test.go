package guard

import (
	"errors"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Entity: "Employee", ID: 999}
	if err.Error() != "Employee with id 999 not found" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNotFoundErrorMatchesAs(t *testing.T) {
	var target *NotFoundError
	err := error(&NotFoundError{Entity: "Training program", ID: 7})
	if !errors.As(err, &target) {
		t.Fatal("errors.As should match *NotFoundError")
	}
	if target.Entity != "Training program" || target.ID != 7 {
		t.Fatalf("unexpected target: %+v", target)
	}
}
