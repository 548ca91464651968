package depgraph

import "testing"

func TestResolveOpenLibraryReference(t *testing.T) {
	g := New()
	// entity work.counter with two architectures
	g.Insert("/src/counter_e.vhd", set("work.counter"), nil)
	g.Insert("/src/counter_rtl.vhd", set("work.counter.rtl"), set("work.counter"))
	g.Insert("/src/counter_behav.vhd", set("work.counter.behav"), set("work.counter"))
	// a file instantiating the component without qualification
	g.Insert("/src/top.vhd", set("work.top"), set("*.counter"))

	g.Resolve()

	if !hasEdge(g, "*.counter", "work.counter.rtl") {
		t.Error("missing edge *.counter -> work.counter.rtl")
	}
	if !hasEdge(g, "*.counter", "work.counter.behav") {
		t.Error("missing edge *.counter -> work.counter.behav")
	}
	if hasEdge(g, "*.counter", "work.counter") {
		t.Error("wildcard must not bind to the first-level unit itself")
	}
}

func TestResolveCompanionNode(t *testing.T) {
	g := New()
	g.Insert("/src/e.vhd", set("work.e"), nil)
	g.Insert("/src/a1.vhd", set("work.e.rtl"), set("work.e"))
	g.Insert("/src/a2.vhd", set("work.e.sim"), set("work.e"))

	g.Resolve()

	for _, arch := range []string{"work.e.rtl", "work.e.sim"} {
		if !hasEdge(g, "work.e.*", arch) {
			t.Errorf("companion work.e.* should bind to %s", arch)
		}
	}
}

func TestResolveVunitBinding(t *testing.T) {
	g := New()
	g.Insert("/src/adder.vhd", set("work.adder", "work.adder.rtl"), set("work.adder"))
	g.Insert("/src/check.psl", set("formal.adder.rtl.check"), set("*.adder.rtl"))

	g.Resolve()

	if !hasEdge(g, "*.adder.rtl", "work.adder.rtl") {
		t.Fatal("vunit reference should bind to the concrete architecture")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	g := New()
	g.Insert("/src/e.vhd", set("work.e", "work.e.rtl"), set("work.e"))
	g.Insert("/src/top.vhd", set("work.top"), set("*.e"))

	g.Resolve()
	edges := g.EdgeCount()
	g.Resolve()
	if g.EdgeCount() != edges {
		t.Fatalf("second resolve added edges: %d -> %d", edges, g.EdgeCount())
	}
}

func TestMatchesWildcard(t *testing.T) {
	cases := []struct {
		u, v string
		want bool
	}{
		{"*.counter", "work.counter.rtl", true},
		{"*.counter", "work.counter", false},
		{"*.counter", "work.timer.rtl", false},
		{"work.counter.*", "work.counter.rtl", true},
		{"work.counter.*", "work.counter", false},
		{"*.adder.rtl", "work.adder.rtl", true},
		{"*.adder.*", "work.adder.sim", true},
		{"*.adder.*", "work.adder.sim.check", true},
		// exactly one wildcard side, ever
		{"*.counter", "work.counter.*", false},
		{"work.counter.rtl", "work.counter.rtl", false},
		{"*.Counter", "work.counter.rtl", true},
	}
	for _, c := range cases {
		if got := matchesWildcard(normalize(c.u), normalize(c.v)); got != c.want {
			t.Errorf("matchesWildcard(%q, %q) = %v, want %v", c.u, c.v, got, c.want)
		}
	}
}
