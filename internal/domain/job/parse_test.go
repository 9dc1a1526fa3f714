package job

import "testing"

func TestParseWage(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"¥1,200/hour", 1200, true},
		{"¥950", 950, true},
		{"1500 yen per hour", 1500, true},
		{"Negotiable", 0, false},
		{"", 0, false},
		{"¥1,200-1,500/hour", 1200, true},
	}
	for _, c := range cases {
		got, ok := ParseWage(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseWage(%q) = (%d, %t), want (%d, %t)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseCommuteMinutes(t *testing.T) {
	got, ok := ParseCommuteMinutes("15 min")
	if !ok || got != 15 {
		t.Fatalf("ParseCommuteMinutes = (%d, %t), want (15, true)", got, ok)
	}
	if _, ok := ParseCommuteMinutes("near station"); ok {
		t.Fatalf("expected no parse for text-only commute")
	}
}

func TestAvailableOn(t *testing.T) {
	j := Job{WorkDays: []Weekday{Mon, Sat}}

	if !j.AvailableOn(nil) {
		t.Fatalf("empty constraint must match")
	}
	if !j.AvailableOn([]Weekday{Sat}) {
		t.Fatalf("single overlapping day must match")
	}
	if !j.AvailableOn([]Weekday{Sun, Sat}) {
		t.Fatalf("partial overlap must match")
	}
	if j.AvailableOn([]Weekday{Tue, Sun}) {
		t.Fatalf("disjoint sets must not match")
	}

	empty := Job{}
	if empty.AvailableOn([]Weekday{Mon}) {
		t.Fatalf("job with no work days must not match an active constraint")
	}
}
