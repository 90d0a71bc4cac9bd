package objsig

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/signadot/objsig/parse"
	"github.com/signadot/objsig/value"
)

func mustParse(t *testing.T, doc string) *value.Value {
	t.Helper()
	v, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse %s: %v", doc, err)
	}
	return v
}

func TestSignature(t *testing.T) {
	tests := []struct {
		desc, json, sig string
	}{
		{"string", `"abc"`, "c4449120506d97975c67be69719a78e2"},
		{"number", `1`, "594170053719896a11eb08ee513813d5"},
		{"float", `1.2`, "f1ab6592886cd4b1b66ed55e73d9ab81"},
		{"array of integers", `[1, 2, 3]`, "b07db153d855dc2a42a0b669e3f7e4b3"},
		{"array of strings", `["a", "b", "c"]`, "c732c2fd36a2573974fe22f20a24e4f9"},
		{"mixed array", `[1, "a", 3]`, "cd1c43797d488d0f6c0d71537c64d30b"},
		{"mixed array sorting", `[3, null, 1, "1"]`, "518e7bb17674f6acbb296845862a152d"},
		{"letter casing", `["a", "A", "b", "B"]`, "f6692ab4bc94b35e61ec15c2d1891734"},
		{"nested arrays", `["a", 1, ["b", "2"]]`, "3aaa58da4841eaeb41d3726d2c6fd875"},
		{"nested arrays reordered", `[["b", "2"], "a", 1]`, "3aaa58da4841eaeb41d3726d2c6fd875"},
		{"object", `{"a": 1}`, "8cb44d69badda0f34b0bab6bb3e7fdbf"},
		{"nested object", `{"a": {"c": null, "2": 2 }}`, "bff3538075e4007c7679a7ba0d0a5f30"},
		{"nested object reordered", `{"a": {"2": 2, "c": null}}`, "bff3538075e4007c7679a7ba0d0a5f30"},
		{"null", `null`, "b14a7b8059d9c055954c92674ce60032"},
		{"true", `true`, "6413cfeb7a89f7e0a8872f82b919c0d9"},
		{"false", `false`, "fa39253035cfe44c8638b8f5d7a3402e"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Signature(mustParse(t, tt.json))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.sig {
				t.Errorf("Signature(%s) = %s want %s", tt.json, got, tt.sig)
			}
		})
	}
}

func TestSignatureTypeSensitive(t *testing.T) {
	one := MustSignature(mustParse(t, `1`))
	oneStr := MustSignature(mustParse(t, `"1"`))
	oneFloat := MustSignature(mustParse(t, `1.0`))
	if one == oneStr || one == oneFloat || oneStr == oneFloat {
		t.Errorf("signatures collide: %s %s %s", one, oneStr, oneFloat)
	}
	if oneStr != "6137270f515af002fa365f596612f3bd" {
		t.Errorf(`Signature("1") = %s`, oneStr)
	}
	if oneFloat != "8e4783b95dca49d3c82bdc7da27d8c2e" {
		t.Errorf("Signature(1.0) = %s", oneFloat)
	}
}

func TestSignatureShape(t *testing.T) {
	sig := MustSignature(mustParse(t, `{"x": [1, {"y": null}]}`))
	if len(sig) != 32 || strings.ToLower(sig) != sig {
		t.Errorf("signature %q is not 32 lowercase hex digits", sig)
	}
}

func TestSignDepth(t *testing.T) {
	v := value.FromNumber("1")
	for range 4 {
		v = value.FromSlice([]*value.Value{v})
	}
	if _, err := Sign(v, WithMaxDepth(3)); !errors.Is(err, value.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	if _, err := Sign(v, WithMaxDepth(4)); err != nil {
		t.Error(err)
	}
}

func TestSignatureKeysSharingLowBits(t *testing.T) {
	// "š" is U+0161, which compares like "a"
	want := "5811869a5f82f52925ceafd55fd77e19"
	for _, doc := range []string{`{"š": 1, "a": 1}`, `{"a": 1, "š": 1}`} {
		if got := MustSignature(mustParse(t, doc)); got != want {
			t.Errorf("%s: got %s want %s", doc, got, want)
		}
	}
}

func TestSignMalformedDoesNotPanic(t *testing.T) {
	v := value.FromSlice([]*value.Value{value.FromSlice([]*value.Value{value.FromNumber("")})})
	if _, err := Signature(v); !errors.Is(err, value.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestSignDeepChain(t *testing.T) {
	v := value.FromNumber("1")
	for range value.DefaultMaxDepth {
		v = value.FromSlice([]*value.Value{v})
	}
	start := time.Now()
	if _, err := Sign(v); err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > 10*time.Second {
		t.Errorf("signing a chain of depth %d took %s", value.DefaultMaxDepth, d)
	}
}

func TestVerify(t *testing.T) {
	v := mustParse(t, `{"a": 1}`)
	if err := Verify(v, "8cb44d69badda0f34b0bab6bb3e7fdbf"); err != nil {
		t.Error(err)
	}
	if err := Verify(v, " 8CB44D69BADDA0F34B0BAB6BB3E7FDBF\n"); err != nil {
		t.Errorf("upper case: %v", err)
	}
	if err := Verify(v, "594170053719896a11eb08ee513813d5"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
	for _, bad := range []string{"", "abc", "zz4170053719896a11eb08ee513813d5"} {
		if err := Verify(v, bad); !errors.Is(err, ErrBadSignature) {
			t.Errorf("Verify(%q): expected ErrBadSignature, got %v", bad, err)
		}
	}
}

func TestSumText(t *testing.T) {
	sum, err := Sign(mustParse(t, `true`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := sum.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Sum
	if err := back.UnmarshalText(d); err != nil {
		t.Fatal(err)
	}
	if back != sum || back.String() != "6413cfeb7a89f7e0a8872f82b919c0d9" {
		t.Errorf("got %s", back)
	}
}

func TestSignDocument(t *testing.T) {
	sig, err := SignDocument([]byte("a:\n  '2': 2\n  c: null\n"), parse.ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if sig != "bff3538075e4007c7679a7ba0d0a5f30" {
		t.Errorf("got %s", sig)
	}
	if _, err := SignDocument([]byte(`{`)); !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestDigest(t *testing.T) {
	d, err := Digest(mustParse(t, `{"a": 1}`), digest.SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if want := digest.Digest("sha256:1d33e4f72a76bb2da5867e9dd55d7b0cc92957c092a7aa3f0e64ce6e86d11e2c"); d != want {
		t.Errorf("got %s want %s", d, want)
	}
	if _, err := Digest(value.Null(), digest.Algorithm("md4")); !errors.Is(err, digest.ErrDigestUnsupported) {
		t.Errorf("expected ErrDigestUnsupported, got %v", err)
	}
}

func TestSignConcurrent(t *testing.T) {
	v := mustParse(t, `[{"k": [3, 2, 1]}, "x", null, {"z": {"y": [true, false]}}]`)
	want := MustSignature(v)
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := MustSignature(v); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent signature %s want %s", got, want)
	}
}
