package value

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != ty {
			t.Errorf("got %s want %s", back, ty)
		}
	}
	var ty Type
	if err := ty.UnmarshalText([]byte("Comment")); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestFromMapSortsFields(t *testing.T) {
	v := FromMap(map[string]*Value{
		"b": FromNumber("2"),
		"a": FromNumber("1"),
		"c": Null(),
	})
	var keys []string
	for _, f := range v.Fields {
		keys = append(keys, f.String)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if v.Values[1].Number != "2" {
		t.Errorf("value of b = %q", v.Values[1].Number)
	}
}

func TestKeyValsRoundTrip(t *testing.T) {
	kvs := []KeyVal{
		{Key: "z", Val: FromBool(true)},
		{Key: "a", Val: FromString("x")},
	}
	v := FromKeyVals(kvs)
	if diff := cmp.Diff(kvs, v.KeyVals()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if FromString("x").KeyVals() != nil {
		t.Error("KeyVals on a string should be nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromSlice([]*Value{
		FromKeyVals([]KeyVal{{Key: "a", Val: FromNumber("1")}}),
		FromString("s"),
	})
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	c.Values[0].Values[0].Number = "2"
	c.Values[1].String = "t"
	if orig.Values[0].Values[0].Number != "1" || orig.Values[1].String != "s" {
		t.Error("mutating the clone changed the original")
	}
}

func nest(depth int) *Value {
	v := Null()
	for range depth {
		v = FromSlice([]*Value{v})
	}
	return v
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		v     *Value
		max   int
		depth int
		err   error
	}{
		{"scalar", FromString("a"), 10, 0, nil},
		{"nested", nest(3), 10, 3, nil},
		{"at limit", nest(5), 5, 5, nil},
		{"over limit", nest(6), 5, 0, ErrTooDeep},
		{"no limit", nest(100), -1, 100, nil},
		{"nil child", FromSlice([]*Value{nil}), 10, 0, ErrMalformed},
		{"bad type", &Value{Type: Type(42)}, 10, 0, ErrMalformed},
		{"field mismatch", &Value{Type: ObjectType, Fields: []*Value{FromString("a")}}, 10, 0, ErrMalformed},
		{"number field", &Value{Type: ObjectType, Fields: []*Value{FromNumber("1")}, Values: []*Value{Null()}}, 10, 0, ErrMalformed},
		{"empty number", FromSlice([]*Value{FromSlice([]*Value{FromNumber("")})}), 10, 0, ErrMalformed},
		{"duplicate key", FromKeyVals([]KeyVal{{"a", Null()}, {"a", Null()}}), 10, 0, ErrMalformed},
		{"object depth", FromKeyVals([]KeyVal{{"a", nest(2)}}), 10, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth, err := Check(tt.v, tt.max)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Check() error = %v, want %v", err, tt.err)
			}
			if err == nil && depth != tt.depth {
				t.Errorf("Check() depth = %d, want %d", depth, tt.depth)
			}
		})
	}
}

func TestCheckDeepDoesNotRecurse(t *testing.T) {
	if _, err := Check(nest(1_000_000), -1); err != nil {
		t.Fatal(err)
	}
}

func TestCheckErrorPath(t *testing.T) {
	v := FromKeyVals([]KeyVal{{Key: "a", Val: FromSlice([]*Value{Null(), nil})}})
	_, err := Check(v, -1)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v", err)
	}
	if want := "nil value at $.a[1]"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %q", err, want)
	}
}
