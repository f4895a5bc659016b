package collections_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-value-collections/collections"
	"github.com/hasbyte1/go-value-collections/compare"
)

// ─────────────────────────────────────────────────────────────────────────────
// Duplicate-key policies
// ─────────────────────────────────────────────────────────────────────────────

func TestPolicyFailOnDuplicate(t *testing.T) {
	m := collections.NewMap[string, int](collections.FailOnDuplicate)
	if err := m.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	err := m.Set("a", 2)
	if !errors.Is(err, collections.ErrDuplicateKey) {
		t.Fatalf("got %v; want ErrDuplicateKey", err)
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Fatal("failed insert must not mutate")
	}
}

func TestPolicyIgnoreDuplicate(t *testing.T) {
	m := collections.NewMap[string, int](collections.IgnoreDuplicate)
	m.Set("a", 1)
	if err := m.Set("a", 2); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Fatalf("Ignore must keep the first value; got %v", v)
	}
}

func TestPolicyOverwriteDuplicate(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("a", 1)
	m.Set("b", 2)
	if err := m.Set("a", 3); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("a"); v != 3 {
		t.Fatalf("Overwrite must replace the value; got %v", v)
	}
	// The key keeps its original insertion position.
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Fatalf("key order changed:\n%s", diff)
	}
}

func TestSetWithOverridesPolicy(t *testing.T) {
	m := collections.NewMap[string, int](collections.FailOnDuplicate)
	m.Set("a", 1)
	if err := m.SetWith("a", 2, collections.OverwriteDuplicate); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("a"); v != 2 {
		t.Fatal("per-insertion override must apply")
	}
}

func TestMapOfAppliesPolicyDuringConstruction(t *testing.T) {
	_, err := collections.MapOf(collections.FailOnDuplicate,
		collections.E("a", 1), collections.E("a", 2))
	if !errors.Is(err, collections.ErrDuplicateKey) {
		t.Fatalf("got %v; want ErrDuplicateKey", err)
	}

	m, err := collections.MapOf(collections.IgnoreDuplicate,
		collections.E("a", 1), collections.E("a", 2))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Fatal("first value must win under Ignore")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

func TestGetMissingKey(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	_, err := m.Get("missing")
	if !errors.Is(err, collections.ErrKeyNotFound) {
		t.Fatalf("got %v; want ErrKeyNotFound", err)
	}
}

func TestTryGet(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("a", 1)
	if v := m.TryGet("a", -1); v != 1 {
		t.Fatalf("TryGet present = %v; want 1", v)
	}
	if v := m.TryGet("b", -1); v != -1 {
		t.Fatalf("TryGet absent = %v; want the default", v)
	}
}

func TestHasKey(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("a", 1)
	ok, err := m.HasKey("a")
	if err != nil || !ok {
		t.Fatalf("HasKey(a) = %v, %v; want true, nil", ok, err)
	}
	ok, err = m.HasKey("b")
	if err != nil || ok {
		t.Fatalf("HasKey(b) = %v, %v; want false, nil", ok, err)
	}
}

func TestEquivalentKeysShareASlot(t *testing.T) {
	// 5 and "5" hash to the same slot and compare equal, so they address
	// the same entry; the original first key survives on iteration.
	m := collections.NewMap[any, string](collections.OverwriteDuplicate)
	m.Set(5, "x")

	ok, err := m.HasKey("5")
	if err != nil || !ok {
		t.Fatalf(`HasKey("5") = %v, %v; want true, nil`, ok, err)
	}
	if err := m.Set("5", "y"); err != nil {
		t.Fatal(err)
	}
	if m.Count() != 1 {
		t.Fatalf("Count = %d; want 1", m.Count())
	}
	if v, _ := m.Get(5); v != "y" {
		t.Fatalf("Get(5) = %v; want the overwritten value", v)
	}
	keys := m.Keys()
	if len(keys) != 1 || keys[0] != 5 {
		t.Fatalf("Keys = %v; want the original key 5", keys)
	}
}

func TestIndirectKeysDisambiguateCollisions(t *testing.T) {
	// 5.9 truncates to slot 5 but is not equal to 5; the bucket scan must
	// tell the two apart.
	m := collections.NewMap[any, string](collections.FailOnDuplicate)
	if err := m.Set(5.9, "float"); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(5, "int"); err != nil {
		t.Fatal(err)
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d; want 2", m.Count())
	}
	if v, _ := m.Get(5.9); v != "float" {
		t.Fatal("Get(5.9) failed")
	}
	if v, _ := m.Get(5); v != "int" {
		t.Fatal("Get(5) failed")
	}
}

func TestUnhashableKey(t *testing.T) {
	m := collections.NewMap[any, int](collections.OverwriteDuplicate)
	err := m.Set([]int{1}, 1)
	if !errors.Is(err, compare.ErrHashingUnsupported) {
		t.Fatalf("got %v; want ErrHashingUnsupported", err)
	}
	if v := m.TryGet([]int{1}, -1); v != -1 {
		t.Fatal("TryGet must fall back to the default for unhashable keys")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration order & removal
// ─────────────────────────────────────────────────────────────────────────────

func TestInsertionOrderIteration(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	if diff := cmp.Diff([]string{"c", "a", "b"}, m.Keys()); diff != "" {
		t.Fatalf("Keys order:\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 1, 2}, m.Values()); diff != "" {
		t.Fatalf("Values order:\n%s", diff)
	}

	var viaRange []string
	for k, v := range m.All() {
		_ = v
		viaRange = append(viaRange, k)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, viaRange); diff != "" {
		t.Fatalf("range order:\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	ok, err := m.Remove("b")
	if err != nil || !ok {
		t.Fatalf("Remove(b) = %v, %v; want true, nil", ok, err)
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d; want 2", m.Count())
	}
	if _, err := m.Get("b"); !errors.Is(err, collections.ErrKeyNotFound) {
		t.Fatal("removed key must be gone")
	}
	// Remaining entries stay addressable after the positions shift.
	if v, _ := m.Get("a"); v != 1 {
		t.Fatal("Get(a) failed after removal")
	}
	if v, _ := m.Get("c"); v != 3 {
		t.Fatal("Get(c) failed after removal")
	}

	ok, err = m.Remove("b")
	if err != nil || ok {
		t.Fatalf("second Remove(b) = %v, %v; want false, nil", ok, err)
	}
}

func TestEachStops(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	seen := 0
	m.Each(func(k string, v int) bool {
		seen++
		return v < 2
	})
	if seen != 2 {
		t.Fatalf("Each visited %d entries; want 2", seen)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Read-only view
// ─────────────────────────────────────────────────────────────────────────────

func TestMapAsReadonlySnapshot(t *testing.T) {
	m := collections.NewMap[string, int](collections.OverwriteDuplicate)
	m.Set("a", 1)
	r := m.AsReadonly()
	m.Set("b", 2)

	n, err := r.Count()
	if err != nil || n != 1 {
		t.Fatalf("snapshot Count = %d, %v; want 1, nil", n, err)
	}
	if !r.Frozen() {
		t.Fatal("snapshot must be born frozen")
	}
}
