package validate

import "testing"

func TestEnumRejectsUnknownValue(t *testing.T) {
	v := New()
	v.Enum("status", "archived", []string{"active", "inactive"})
	if !v.HasIssues() {
		t.Fatal("expected issue for unknown enum value")
	}
}

func TestEnumSkipsEmptyValue(t *testing.T) {
	v := New()
	v.Enum("status", "", []string{"active"})
	if v.HasIssues() {
		t.Fatal("empty value is a Required concern, not an enum issue")
	}
}

func TestDateCanonicalizesRFC3339(t *testing.T) {
	v := New()
	got := v.Date("hireDate", "2023-01-01T15:04:05Z")
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %v", v.Err())
	}
	if got != "2023-01-01" {
		t.Fatalf("expected time component truncated, got %s", got)
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	v := New()
	v.Date("hireDate", "not-a-date")
	if !v.HasIssues() {
		t.Fatal("expected issue for malformed date")
	}
}

func TestDateOrder(t *testing.T) {
	v := New()
	v.DateOrder("startDate", "2024-02-01", "endDate", "2024-01-01")
	if !v.HasIssues() {
		t.Fatal("expected issue for end before start")
	}
}

func TestRangeBounds(t *testing.T) {
	v := New()
	v.Range("score", 100, 0, 100)
	if v.HasIssues() {
		t.Fatal("bounds are inclusive")
	}
	v.Range("score", 100.5, 0, 100)
	if !v.HasIssues() {
		t.Fatal("expected issue above upper bound")
	}
}

func TestErrSortsIssues(t *testing.T) {
	v := New()
	v.Add("zeta", "is required")
	v.Add("alpha", "is required")
	err := v.Err()
	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Issues[0].Field != "alpha" {
		t.Fatalf("expected issues sorted by field, got %+v", verr.Issues)
	}
}

func TestErrNilWhenClean(t *testing.T) {
	if err := New().Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
