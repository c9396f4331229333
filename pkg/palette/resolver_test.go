package palette

import "testing"

func TestResolverFirstSeenOrder(t *testing.T) {
	p := Palette{"#111111", "#222222", "#333333"}
	r := NewResolver(p)

	if got := r.Resolve("work"); got != "#111111" {
		t.Errorf("first title = %q, want #111111", got)
	}
	if got := r.Resolve("rest"); got != "#222222" {
		t.Errorf("second title = %q, want #222222", got)
	}

	// Seen titles keep their assignment no matter how often they recur.
	for i := 0; i < 3; i++ {
		if got := r.Resolve("work"); got != "#111111" {
			t.Errorf("repeat resolve = %q, want #111111", got)
		}
	}

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestResolverModuloCycling(t *testing.T) {
	p := Palette{"#111111", "#222222"}
	r := NewResolver(p)

	r.Resolve("a")
	r.Resolve("b")
	if got := r.Resolve("c"); got != "#111111" {
		t.Errorf("third title on two-color palette = %q, want #111111", got)
	}
	if got := r.Resolve("d"); got != "#222222" {
		t.Errorf("fourth title = %q, want #222222", got)
	}
}

func TestResolverScoping(t *testing.T) {
	p := Palette{"#111111", "#222222"}

	// Two independent resolvers (two renders, or two timeline tracks)
	// both hand out palette[0] to their first title.
	r1 := NewResolver(p)
	r2 := NewResolver(p)

	r1.Resolve("alpha")
	if got := r2.Resolve("beta"); got != "#111111" {
		t.Errorf("fresh resolver first color = %q, want #111111", got)
	}
}

func TestResolverTotals(t *testing.T) {
	r := NewResolver(Default())

	r.Accumulate("deep work", 60)
	r.Accumulate("break", 15)
	r.Accumulate("deep work", 30)

	cats := r.Categories()
	if len(cats) != 2 {
		t.Fatalf("Categories() len = %d, want 2", len(cats))
	}

	if cats[0].Title != "deep work" || cats[0].Total != 90 {
		t.Errorf("cats[0] = %+v, want deep work total 90", cats[0])
	}
	if cats[1].Title != "break" || cats[1].Total != 15 {
		t.Errorf("cats[1] = %+v, want break total 15", cats[1])
	}
	if cats[0].Color == cats[1].Color {
		t.Error("distinct titles should get distinct colors on a 10-color palette")
	}
}

func TestResolverAccumulateClaimsSlot(t *testing.T) {
	p := Palette{"#111111", "#222222"}
	r := NewResolver(p)

	// Accumulating an unseen title must claim the next color slot even
	// without an explicit Resolve call first.
	r.Accumulate("only-total", 5)
	if got := r.Resolve("second"); got != "#222222" {
		t.Errorf("second title = %q, want #222222", got)
	}
}
