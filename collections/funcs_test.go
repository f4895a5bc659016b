package collections_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-value-collections/collections"
	"github.com/hasbyte1/go-value-collections/compare"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n, _ int) string {
		return strconv.Itoa(n * 2)
	})
	assertSlice(t, got.All(), []string{"2", "4", "6"})
}

func TestFlatMap(t *testing.T) {
	got := collections.FlatMap(collections.NewSequence("a b", "c"), func(s string, _ int) []string {
		return strings.Fields(s)
	})
	assertSlice(t, got.All(), []string{"a", "b", "c"})
}

func TestReduceFunc(t *testing.T) {
	got := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		return acc + strconv.Itoa(n)
	}, "")
	if got != "123" {
		t.Fatalf("Reduce = %q; want %q", got, "123")
	}
}

func TestPluck(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	users := collections.NewSequence(user{"ana", 30}, user{"bo", 40})
	got := collections.Pluck(users, func(u user) string { return u.name })
	assertSlice(t, got.All(), []string{"ana", "bo"})
}

func TestGroupBy(t *testing.T) {
	groups, err := collections.GroupBy(ints(1, 2, 3, 4, 5), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if err != nil {
		t.Fatal(err)
	}

	odd, err := groups.Get("odd")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, odd.All(), []int{1, 3, 5})

	even, err := groups.Get("even")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, even.All(), []int{2, 4})

	// Groups iterate in order of first appearance.
	if diff := cmp.Diff([]string{"odd", "even"}, groups.Keys()); diff != "" {
		t.Fatalf("group order:\n%s", diff)
	}
}

func TestGroupByEquivalentKeysMerge(t *testing.T) {
	// Keys 1 and "1" are equal under the default comparer, so their items
	// land in a single group.
	groups, err := collections.GroupBy(collections.NewSequence[any](1, "1", 2), func(v any) any {
		return v
	})
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	groups.Each(func(_ any, g *collections.Sequence[any]) bool {
		n++
		return true
	})
	if n != 2 {
		t.Fatalf("got %d groups; want 2", n)
	}
	one, err := groups.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if one.Count() != 2 {
		t.Fatalf("group for 1 holds %d items; want 2", one.Count())
	}
}

func TestGroupByUnhashableKey(t *testing.T) {
	_, err := collections.GroupBy(ints(1), func(n int) any { return []int{n} })
	if !errors.Is(err, compare.ErrHashingUnsupported) {
		t.Fatalf("got %v; want ErrHashingUnsupported", err)
	}
}

func TestKeyBy(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	m, err := collections.KeyBy(
		collections.NewSequence(user{1, "ana"}, user{2, "bo"}, user{1, "cy"}),
		func(u user) int { return u.id },
	)
	if err != nil {
		t.Fatal(err)
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d; want 2", m.Count())
	}
	u, err := m.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if u.name != "cy" {
		t.Fatalf("KeyBy must keep the last item per key; got %q", u.name)
	}
}

func TestZip(t *testing.T) {
	pairs := collections.Zip(collections.NewSequence("a", "b", "c"), ints(1, 2))
	if pairs.Count() != 2 {
		t.Fatalf("Zip stops at the shorter side; Count = %d", pairs.Count())
	}
	want := []collections.Entry[string, int]{
		collections.E("a", 1),
		collections.E("b", 2),
	}
	if diff := cmp.Diff(want, pairs.All()); diff != "" {
		t.Fatalf("Zip:\n%s", diff)
	}
}

func TestCollapse(t *testing.T) {
	flat := collections.Collapse(collections.NewSequence([]int{1, 2}, []int{3}))
	assertSlice(t, flat.All(), []int{1, 2, 3})
}
