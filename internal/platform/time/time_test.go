package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatal("zero time should yield nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("p = %v", p)
	}
}

func TestUTCNow(t *testing.T) {
	got := UTCNow()
	if got.Location() != time.UTC {
		t.Fatalf("location = %v", got.Location())
	}
	if got.Nanosecond()%1000 != 0 {
		t.Fatalf("not microsecond aligned: %d", got.Nanosecond())
	}
}
