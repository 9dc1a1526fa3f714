package cache

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestListingKey(t *testing.T) {
	id := uuid.New()

	a := ListingKey(id, 0, 0)
	if !strings.HasPrefix(a, "jobs:listing:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}
	if b := ListingKey(id, 0, 0); b != a {
		t.Fatalf("same inputs must give the same key")
	}

	// Any version bump or other session lands on a different key.
	if ListingKey(id, 1, 0) == a {
		t.Fatalf("ledger version must change the key")
	}
	if ListingKey(id, 0, 1) == a {
		t.Fatalf("filter version must change the key")
	}
	if ListingKey(uuid.New(), 0, 0) == a {
		t.Fatalf("session id must change the key")
	}
}
