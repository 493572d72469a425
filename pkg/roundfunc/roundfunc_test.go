package roundfunc_test

import (
	"errors"
	"testing"

	"github.com/idelchi/feistel/pkg/feistel"
	"github.com/idelchi/feistel/pkg/roundfunc"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	seen := make(map[byte]string)

	for _, fn := range roundfunc.All() {
		if other, ok := seen[fn.ID]; ok {
			t.Errorf("id %d shared by %q and %q", fn.ID, other, fn.Name)
		}

		seen[fn.ID] = fn.Name

		byName, err := roundfunc.ByName(fn.Name)
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", fn.Name, err)
		}

		byID, err := roundfunc.ByID(fn.ID)
		if err != nil {
			t.Fatalf("ByID(%d) error: %v", fn.ID, err)
		}

		if byName != byID {
			t.Errorf("ByName(%q) = %+v, ByID(%d) = %+v", fn.Name, byName, fn.ID, byID)
		}
	}

	if len(seen) != 4 {
		t.Errorf("All() returned %d functions, want 4", len(seen))
	}
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	if _, err := roundfunc.ByName("rot13"); !errors.Is(err, roundfunc.ErrUnknown) {
		t.Errorf("ByName(rot13) error = %v, want %v", err, roundfunc.ErrUnknown)
	}

	if _, err := roundfunc.ByID(0); !errors.Is(err, roundfunc.ErrUnknown) {
		t.Errorf("ByID(0) error = %v, want %v", err, roundfunc.ErrUnknown)
	}

	if _, err := roundfunc.Lookup[uint8]("rot13"); !errors.Is(err, roundfunc.ErrUnknown) {
		t.Errorf("Lookup(rot13) error = %v, want %v", err, roundfunc.ErrUnknown)
	}
}

func TestFunctions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		half uint8
		key  uint8
		want uint8
	}{
		{"and", 0x39, 0x5C, 0x18},
		{"and", 0xFF, 0xFF, 0xFF},
		{"xor", 0x39, 0x5C, 0x65},
		{"zero", 0x39, 0x5C, 0x00},
	}

	for _, tc := range cases {
		fn, err := roundfunc.Lookup[uint8](tc.name)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", tc.name, err)
		}

		if got := fn(tc.half, tc.key); got != tc.want {
			t.Errorf("%s(%#x, %#x) = %#x, want %#x", tc.name, tc.half, tc.key, got, tc.want)
		}
	}
}

func TestBlake2b(t *testing.T) {
	t.Parallel()

	first := roundfunc.Blake2b[uint32](0x01234567, 0x5C5C5C5C)

	if again := roundfunc.Blake2b[uint32](0x01234567, 0x5C5C5C5C); again != first {
		t.Errorf("Blake2b is not deterministic: %#x then %#x", first, again)
	}

	if other := roundfunc.Blake2b[uint32](0x01234568, 0x5C5C5C5C); other == first {
		t.Errorf("Blake2b(%#x) collides with neighbouring input", first)
	}

	// The narrow variant keeps the top byte of the same digest as the wide one.
	narrow := roundfunc.Blake2b[uint8](0x39, 0x5C)
	wide := roundfunc.Blake2b[uint64](0x39, 0x5C)

	if uint64(narrow) != wide>>56 {
		t.Errorf("Blake2b[uint8] = %#x, want top byte of %#x", narrow, wide)
	}
}

// TestEngineRoundTrip drives every registered function through the engine.
func TestEngineRoundTrip(t *testing.T) {
	t.Parallel()

	for _, meta := range roundfunc.All() {
		t.Run(meta.Name, func(t *testing.T) {
			t.Parallel()

			fn, err := roundfunc.Lookup[uint16](meta.Name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", meta.Name, err)
			}

			engine, err := feistel.New[uint32](16, fn)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}

			for _, v := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
				if got := engine.Decrypt(engine.Encrypt(v, 0xBEEF), 0xBEEF); got != v {
					t.Errorf("round trip of %#x = %#x", v, got)
				}
			}
		})
	}
}
