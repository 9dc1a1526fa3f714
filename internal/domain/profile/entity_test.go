package profile

import "testing"

func TestMissingFields(t *testing.T) {
	u := UserProfile{FirstName: "Aziz", Email: "aziz@example.com"}

	missing := u.MissingFields()
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", missing)
	}
	if missing[0] != "last_name" || missing[1] != "phone" {
		t.Fatalf("unexpected order: %v", missing)
	}
	if u.Complete() {
		t.Fatalf("expected incomplete")
	}
}

func TestMissingFields_WhitespaceOnly(t *testing.T) {
	u := UserProfile{FirstName: "  ", LastName: "Karimov", Email: "a@b.c", Phone: "080"}
	missing := u.MissingFields()
	if len(missing) != 1 || missing[0] != "first_name" {
		t.Fatalf("whitespace-only value must count as missing, got %v", missing)
	}
}

func TestComplete(t *testing.T) {
	u := UserProfile{
		FirstName: "Aziz",
		LastName:  "Karimov",
		Email:     "aziz@example.com",
		Phone:     "080-1234-5678",
	}
	if !u.Complete() {
		t.Fatalf("expected complete, missing %v", u.MissingFields())
	}
}
