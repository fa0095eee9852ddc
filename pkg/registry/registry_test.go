package registry

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/arthur-debert/richtext/pkg/errors"
)

// tagFunc stands in for a renderer keyed by node type.
type tagFunc func(value string) string

func wrapIn(tag string) tagFunc {
	return func(value string) string { return "<" + tag + ">" + value + "</" + tag + ">" }
}

func TestRegisterAndLookup(t *testing.T) {
	reg := New[tagFunc]()
	MustRegister(reg, "paragraph", wrapIn("p"))
	MustRegister(reg, "heading-1", wrapIn("h1"))

	tests := []struct {
		name    string
		regName string
		wantErr errors.ErrorCode
	}{
		{"duplicate", "paragraph", errors.ErrAlreadyExists},
		{"empty name", "", errors.ErrInvalidInput},
		{"new name", "blockquote", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.regName, wrapIn("x"))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Register(%q) = %v, want nil", tt.regName, err)
				}
				return
			}
			if !errors.IsErrorCode(err, tt.wantErr) {
				t.Fatalf("Register(%q) = %v, want code %s", tt.regName, err, tt.wantErr)
			}
		})
	}

	fn, ok := reg.Lookup("heading-1")
	if !ok || fn("Title") != "<h1>Title</h1>" {
		t.Errorf("Lookup(heading-1) = %v, want h1 renderer", ok)
	}
	if _, ok := reg.Lookup("table"); ok {
		t.Error("Lookup(table) reported a missing entry as present")
	}
	if reg.Count() != 3 || !reg.Has("blockquote") {
		t.Errorf("Count() = %d, Has(blockquote) = %v", reg.Count(), reg.Has("blockquote"))
	}
}

func TestGetAndRemoveMissing(t *testing.T) {
	reg := FromMap(map[string]int{"bold": 1})

	if _, err := reg.Get("italic"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Get(italic) = %v, want NOT_FOUND", err)
	} else if errors.GetErrorDetails(err)["name"] != "italic" {
		t.Errorf("Get(italic) details = %v", errors.GetErrorDetails(err))
	}
	if err := reg.Remove("italic"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Remove(italic) = %v, want NOT_FOUND", err)
	}
	if err := reg.Remove("bold"); err != nil || reg.Count() != 0 {
		t.Errorf("Remove(bold) = %v, Count() = %d", err, reg.Count())
	}
}

func TestSetReplaces(t *testing.T) {
	reg := FromMap(map[string]string{"hr": "hr"})
	if err := reg.Set("hr", "rule"); err != nil {
		t.Fatal(err)
	}
	if got := MustGet(reg, "hr"); got != "rule" {
		t.Errorf("MustGet(hr) = %q, want rule", got)
	}
	if err := reg.Set("", "x"); !errors.IsErrorCode(err, errors.ErrInvalidInput) {
		t.Errorf("Set(\"\") = %v, want INVALID_INPUT", err)
	}
}

func TestListAndEachAreSorted(t *testing.T) {
	reg := FromMap(map[string]int{"underline": 3, "bold": 1, "code": 2})

	want := []string{"bold", "code", "underline"}
	if got := reg.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	var visited []string
	reg.Each(func(name string, _ int) {
		visited = append(visited, name)
		// Each must not hold the lock while calling back.
		_ = reg.Set(name+"-seen", 0)
	})
	if !slices.Equal(visited, want) {
		t.Errorf("Each visited %v, want %v", visited, want)
	}
	if reg.Count() != 6 {
		t.Errorf("Count() after Each = %d, want 6", reg.Count())
	}
}

func TestFromMapCopies(t *testing.T) {
	src := map[string]string{"paragraph": "p"}
	reg := FromMap(src)
	src["paragraph"] = "div"

	if got := MustGet(reg, "paragraph"); got != "p" {
		t.Errorf("registry followed the source map: %q", got)
	}
	if FromMap[string](nil).Set("a", "b") != nil {
		t.Error("FromMap(nil) should be writable")
	}
}

func TestMerge(t *testing.T) {
	defaults := FromMap(map[string]string{
		"paragraph": "p",
		"heading-1": "h1",
	})
	overrides := FromMap(map[string]string{
		"heading-1": "custom-h1",
		"break":     "br",
	})

	merged := Merge(defaults, overrides)

	for name, want := range map[string]string{"paragraph": "p", "heading-1": "custom-h1", "break": "br"} {
		if got, ok := merged.Lookup(name); !ok || got != want {
			t.Errorf("Lookup(%s) = %q, %v; want %q", name, got, ok, want)
		}
	}

	t.Run("inputs untouched", func(t *testing.T) {
		if got, _ := defaults.Lookup("heading-1"); got != "h1" {
			t.Errorf("defaults mutated: heading-1 = %q", got)
		}
		if defaults.Has("break") {
			t.Error("defaults gained an override-only entry")
		}
		_ = merged.Set("paragraph", "changed")
		if got, _ := defaults.Lookup("paragraph"); got != "p" {
			t.Errorf("writing the merged registry leaked into defaults: %q", got)
		}
	})

	t.Run("nil sides", func(t *testing.T) {
		if got := Merge[string](nil, nil); got.Count() != 0 {
			t.Errorf("Merge(nil, nil).Count() = %d, want 0", got.Count())
		}
		if got := Merge(defaults, nil); got.Count() != 2 {
			t.Errorf("Merge(defaults, nil).Count() = %d, want 2", got.Count())
		}
		if got := Merge(nil, overrides); got.Count() != 2 {
			t.Errorf("Merge(nil, overrides).Count() = %d, want 2", got.Count())
		}
	})
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("heading-%d", i), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = reg.Lookup(fmt.Sprintf("heading-%d", i))
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	if reg.Count() != 20 {
		t.Errorf("Count() = %d, want 20", reg.Count())
	}
}

func TestMustPanics(t *testing.T) {
	reg := FromMap(map[string]int{"bold": 1})

	assertPanics(t, "MustRegister duplicate", func() { MustRegister(reg, "bold", 2) })
	assertPanics(t, "MustGet missing", func() { MustGet(reg, "italic") })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func BenchmarkLookup(b *testing.B) {
	reg := New[int]()
	for i := 0; i < 32; i++ {
		MustRegister(reg, fmt.Sprintf("node-%d", i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Lookup("node-16")
	}
}
