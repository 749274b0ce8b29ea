package cache

import (
	"testing"

	"github.com/translucid-lang/tlcore/internal/dimension"
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/either"
	"github.com/translucid-lang/tlcore/internal/value"
)

func TestCacheDeterminism(t *testing.T) {
	c := New()
	k := value.NewContext().Push(dimension.New(0, dimension.Ident("t")), value.U32(5))
	c.Insert("fib", k, either.Left[value.Value, domain.Domain](value.U32(55)))

	for i := 0; i < 3; i++ {
		r, ok := c.Find("fib", k)
		if !ok {
			t.Fatalf("iteration %d: expected cache hit", i)
		}
		v, isLeft := r.Left()
		if !isLeft || v.(value.U32) != 55 {
			t.Fatalf("iteration %d: got %v, want Left(55)", i, r)
		}
	}
}

func TestCacheOverwriteIsIdempotent(t *testing.T) {
	c := New()
	k := value.NewContext()
	c.Insert("x", k, either.Left[value.Value, domain.Domain](value.U32(1)))
	c.Insert("x", k, either.Left[value.Value, domain.Domain](value.U32(2)))

	r, ok := c.Find("x", k)
	if !ok {
		t.Fatal("expected hit")
	}
	v, _ := r.Left()
	if v.(value.U32) != 2 {
		t.Fatalf("expected last write to win, got %v", v)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestCacheMissReturnsFalse(t *testing.T) {
	c := New()
	if _, ok := c.Find("nope", value.NewContext()); ok {
		t.Fatal("expected miss on empty cache")
	}
}
