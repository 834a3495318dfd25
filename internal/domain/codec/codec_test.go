package codec

import (
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := DateToStorage(day)
	if stored != "2023-01-01" {
		t.Fatalf("expected 2023-01-01, got %s", stored)
	}
	back, err := DateFromStorage(stored)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !back.Equal(day) {
		t.Fatalf("expected %v, got %v", day, back)
	}
}

func TestDateToStorageTruncatesTime(t *testing.T) {
	instant := time.Date(2023, 6, 15, 23, 59, 59, 0, time.UTC)
	if got := DateToStorage(instant); got != "2023-06-15" {
		t.Fatalf("expected time-of-day dropped, got %s", got)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, v := range []float64{75000.50, 2.5, 0.25, 1234567.89} {
		stored := DecimalToStorage(v)
		back, err := DecimalFromStorage(stored)
		if err != nil {
			t.Fatalf("decode %q failed: %v", stored, err)
		}
		if back != v {
			t.Fatalf("expected %v to round-trip, got %v via %q", v, back, stored)
		}
	}
}

func TestDecimalToStorageExactText(t *testing.T) {
	if got := DecimalToStorage(75000.50); got != "75000.5" {
		t.Fatalf("expected shortest exact decimal, got %s", got)
	}
}

func TestNullHelpersPropagateNil(t *testing.T) {
	if NullDecimalToStorage(nil) != nil {
		t.Fatal("expected nil for nil decimal")
	}
	if NullDateToStorage(nil) != nil {
		t.Fatal("expected nil for nil date")
	}
	v, err := NullDecimalFromStorage(nil)
	if err != nil || v != nil {
		t.Fatalf("expected nil, nil; got %v, %v", v, err)
	}
	d, err := NullDateFromStorage(nil)
	if err != nil || d != nil {
		t.Fatalf("expected nil, nil; got %v, %v", d, err)
	}
}

func TestDecimalFromStorageRejectsGarbage(t *testing.T) {
	if _, err := DecimalFromStorage("12.3.4"); err == nil {
		t.Fatal("expected error for malformed decimal")
	}
}
