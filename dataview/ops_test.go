package dataview

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/shaunstanislauslau/hermes/buffer"
	"github.com/shaunstanislauslau/hermes/errors"
)

func mustView(t *testing.T, buf *buffer.ArrayBuffer, offset, length any) *View {
	t.Helper()
	v, err := New(buf, offset, length)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestGetUint16_Endianness(t *testing.T) {
	v := mustView(t, buffer.FromBytes([]byte{0x01, 0x02}), nil, nil)

	le, err := v.GetUint16(0, true)
	if err != nil {
		t.Fatal(err)
	}
	if le != 0x0201 {
		t.Errorf("GetUint16(0, little) = %#x, want 0x0201", int(le))
	}
	be, err := v.GetUint16(0, false)
	if err != nil {
		t.Fatal(err)
	}
	if be != 0x0102 {
		t.Errorf("GetUint16(0, big) = %#x, want 0x0102", int(be))
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	buf := buffer.New(16)
	v := mustView(t, buf, nil, nil)

	for _, le := range []bool{false, true} {
		if err := v.SetInt8(0, -7); err != nil {
			t.Fatal(err)
		}
		if got, _ := v.GetInt8(0); got != -7 {
			t.Errorf("Int8 round trip = %v", got)
		}

		if err := v.SetUint16(1, 0xBEEF, le); err != nil {
			t.Fatal(err)
		}
		if got, _ := v.GetUint16(1, le); got != 0xBEEF {
			t.Errorf("Uint16 round trip (le=%v) = %#x", le, int(got))
		}

		if err := v.SetInt32(3, -123456789, le); err != nil {
			t.Fatal(err)
		}
		if got, _ := v.GetInt32(3, le); got != -123456789 {
			t.Errorf("Int32 round trip (le=%v) = %v", le, got)
		}

		if err := v.SetFloat64(8, math.Pi, le); err != nil {
			t.Fatal(err)
		}
		if got, _ := v.GetFloat64(8, le); got != math.Pi {
			t.Errorf("Float64 round trip (le=%v) = %v", le, got)
		}
	}
}

func TestSet_ValueCoercion(t *testing.T) {
	v := mustView(t, buffer.New(8), nil, nil)

	tests := []struct {
		name string
		set  func() error
		get  func() (float64, error)
		want float64
	}{
		{
			"uint8 wraps 257 to 1",
			func() error { return v.SetUint8(0, 257) },
			func() (float64, error) { return v.GetUint8(0) },
			1,
		},
		{
			"int8 wraps 128 to -128",
			func() error { return v.SetInt8(0, 128) },
			func() (float64, error) { return v.GetInt8(0) },
			-128,
		},
		{
			"uint16 stores coercer result",
			func() error { return v.SetUint16(0, &coercer{n: 513}, true) },
			func() (float64, error) { return v.GetUint16(0, true) },
			513,
		},
		{
			"int32 truncates 12.9 toward zero",
			func() error { return v.SetInt32(0, 12.9, false) },
			func() (float64, error) { return v.GetInt32(0, false) },
			12,
		},
		{
			"uint32 stores NaN as 0",
			func() error { return v.SetUint32(0, math.NaN(), false) },
			func() (float64, error) { return v.GetUint32(0, false) },
			0,
		},
		{
			"nil value coerces to NaN, stores 0",
			func() error { return v.SetUint16(0, nil, false) },
			func() (float64, error) { return v.GetUint16(0, false) },
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set(); err != nil {
				t.Fatal(err)
			}
			got, err := tt.get()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetFloat32_RoundsToSingle(t *testing.T) {
	v := mustView(t, buffer.New(4), nil, nil)
	if err := v.SetFloat32(0, math.Pi, true); err != nil {
		t.Fatal(err)
	}
	got, _ := v.GetFloat32(0, true)
	if got != float64(float32(math.Pi)) {
		t.Errorf("GetFloat32 = %v, want single-precision pi", got)
	}
}

func TestFloat64_NaNPayloadThroughView(t *testing.T) {
	v := mustView(t, buffer.New(8), nil, nil)
	const bits = 0x7FF8_0000_0000_BEEF
	if err := v.SetFloat64(0, math.Float64frombits(bits), false); err != nil {
		t.Fatal(err)
	}
	got, err := v.GetFloat64(0, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Float64bits(got) != bits {
		t.Errorf("NaN payload bits = %#x, want %#x", math.Float64bits(got), bits)
	}
}

func TestBounds_EveryKind(t *testing.T) {
	tests := []struct {
		name string
		size uint64
		get  func(v *View, off any) error
		set  func(v *View, off any) error
	}{
		{"Int8", 1,
			func(v *View, off any) error { _, err := v.GetInt8(off); return err },
			func(v *View, off any) error { return v.SetInt8(off, 1) }},
		{"Uint8", 1,
			func(v *View, off any) error { _, err := v.GetUint8(off); return err },
			func(v *View, off any) error { return v.SetUint8(off, 1) }},
		{"Int16", 2,
			func(v *View, off any) error { _, err := v.GetInt16(off, true); return err },
			func(v *View, off any) error { return v.SetInt16(off, 1, true) }},
		{"Uint16", 2,
			func(v *View, off any) error { _, err := v.GetUint16(off, true); return err },
			func(v *View, off any) error { return v.SetUint16(off, 1, true) }},
		{"Int32", 4,
			func(v *View, off any) error { _, err := v.GetInt32(off, true); return err },
			func(v *View, off any) error { return v.SetInt32(off, 1, true) }},
		{"Uint32", 4,
			func(v *View, off any) error { _, err := v.GetUint32(off, true); return err },
			func(v *View, off any) error { return v.SetUint32(off, 1, true) }},
		{"Float32", 4,
			func(v *View, off any) error { _, err := v.GetFloat32(off, true); return err },
			func(v *View, off any) error { return v.SetFloat32(off, 1, true) }},
		{"Float64", 8,
			func(v *View, off any) error { _, err := v.GetFloat64(off, true); return err },
			func(v *View, off any) error { return v.SetFloat64(off, 1, true) }},
		{"BigInt64", 8,
			func(v *View, off any) error { _, err := v.GetBigInt64(off, true); return err },
			func(v *View, off any) error { return v.SetBigInt64(off, 1, true) }},
		{"BigUint64", 8,
			func(v *View, off any) error { _, err := v.GetBigUint64(off, true); return err },
			func(v *View, off any) error { return v.SetBigUint64(off, 1, true) }},
	}

	const viewLen = 16
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustView(t, buffer.New(viewLen), nil, nil)

			// Last valid offset succeeds.
			if err := tt.get(v, viewLen-tt.size); err != nil {
				t.Errorf("get at last valid offset: %v", err)
			}
			if err := tt.set(v, viewLen-tt.size); err != nil {
				t.Errorf("set at last valid offset: %v", err)
			}

			// One past it fails.
			kindOf(t, tt.get(v, viewLen-tt.size+1), errors.PhaseGet, errors.KindOutOfBounds)
			kindOf(t, tt.set(v, viewLen-tt.size+1), errors.PhaseSet, errors.KindOutOfBounds)
		})
	}
}

func TestZeroLengthView_AllAccessFails(t *testing.T) {
	buf := buffer.New(8)
	v := mustView(t, buf, 8, nil) // offset == byteLength, rest is empty

	_, err := v.GetUint8(0)
	kindOf(t, err, errors.PhaseGet, errors.KindOutOfBounds)
	kindOf(t, v.SetUint8(0, 1), errors.PhaseSet, errors.KindOutOfBounds)
}

func TestDetached_AllOpsFail(t *testing.T) {
	buf := buffer.New(16)
	v := mustView(t, buf, nil, nil)
	buf.Detach()

	_, err := v.GetInt32(0, true)
	kindOf(t, err, errors.PhaseGet, errors.KindDetachedBuffer)
	_, err = v.GetBigUint64(0, false)
	kindOf(t, err, errors.PhaseGet, errors.KindDetachedBuffer)
	kindOf(t, v.SetFloat64(0, 1, true), errors.PhaseSet, errors.KindDetachedBuffer)
	kindOf(t, v.SetBigInt64(0, 1, true), errors.PhaseSet, errors.KindDetachedBuffer)
}

// The offset coercion may detach the buffer; attachment is re-checked
// after it, so the access fails with detached_buffer, never touching the
// freed region.
func TestGet_OffsetCoercionDetaches(t *testing.T) {
	buf := buffer.New(16)
	v := mustView(t, buf, nil, nil)

	_, err := v.GetUint32(&coercer{n: 0, effect: buf.Detach}, true)
	kindOf(t, err, errors.PhaseGet, errors.KindDetachedBuffer)
}

// Same for the value coercion on writes, which runs after the offset
// coercion and before any validation.
func TestSet_ValueCoercionDetaches(t *testing.T) {
	buf := buffer.New(16)
	v := mustView(t, buf, nil, nil)

	err := v.SetUint32(0, &coercer{n: 42, effect: buf.Detach}, true)
	kindOf(t, err, errors.PhaseSet, errors.KindDetachedBuffer)
}

// Offset coercion runs before value coercion, and both run before any
// validation even when the offset is out of bounds.
func TestSet_CoercionOrder(t *testing.T) {
	buf := buffer.New(4)
	v := mustView(t, buf, nil, nil)

	var order []string
	off := &coercer{n: 100, effect: func() { order = append(order, "offset") }}
	val := &coercer{n: 1, effect: func() { order = append(order, "value") }}

	err := v.SetUint16(off, val, true)
	kindOf(t, err, errors.PhaseSet, errors.KindOutOfBounds)

	if len(order) != 2 || order[0] != "offset" || order[1] != "value" {
		t.Errorf("coercion order = %v, want [offset value]", order)
	}
}

// A failed write leaves the buffer byte-for-byte untouched.
func TestSet_FailureIsAtomic(t *testing.T) {
	buf := buffer.FromBytes([]byte{1, 2, 3, 4})
	v := mustView(t, buf, nil, nil)

	kindOf(t, v.SetUint32(1, 0xFFFFFFFF, true), errors.PhaseSet, errors.KindOutOfBounds)

	boom := stderrors.New("host threw")
	if err := v.SetUint16(0, &coercer{n: 9, err: boom}, true); !stderrors.Is(err, boom) {
		t.Errorf("value coercer error not propagated: %v", err)
	}

	want := []byte{1, 2, 3, 4}
	for i, b := range buf.Bytes() {
		if b != want[i] {
			t.Fatalf("buffer mutated by failed writes: %v", buf.Bytes())
		}
	}
}

func TestOps_Receiver(t *testing.T) {
	var nilView *View
	_, err := nilView.GetUint8(0)
	kindOf(t, err, errors.PhaseGet, errors.KindReceiverType)
	kindOf(t, nilView.SetUint8(0, 1), errors.PhaseSet, errors.KindReceiverType)

	var zeroView View
	_, err = zeroView.GetFloat64(0, true)
	kindOf(t, err, errors.PhaseGet, errors.KindReceiverType)
	kindOf(t, zeroView.SetBigUint64(0, 1, true), errors.PhaseSet, errors.KindReceiverType)
}

func TestBig_RoundTrip(t *testing.T) {
	v := mustView(t, buffer.New(8), nil, nil)

	for _, le := range []bool{false, true} {
		if err := v.SetBigInt64(0, -1234567890123456789, le); err != nil {
			t.Fatal(err)
		}
		if got, _ := v.GetBigInt64(0, le); got != -1234567890123456789 {
			t.Errorf("BigInt64 round trip (le=%v) = %v", le, got)
		}
		negAsInt64 := int64(-1234567890123456789)
		if got, _ := v.GetBigUint64(0, le); got != uint64(negAsInt64) {
			t.Errorf("BigUint64 reinterpretation (le=%v) = %v", le, got)
		}

		if err := v.SetBigUint64(0, math.MaxUint64, le); err != nil {
			t.Fatal(err)
		}
		if got, _ := v.GetBigUint64(0, le); got != math.MaxUint64 {
			t.Errorf("BigUint64 round trip (le=%v) = %v", le, got)
		}
	}
}

// A view offset into the middle of the buffer addresses buffer bytes at
// byteOffset + localOffset.
func TestView_OffsetWindow(t *testing.T) {
	buf := buffer.FromBytes([]byte{0xAA, 0xBB, 0x01, 0x02, 0xCC})
	v := mustView(t, buf, 2, 2)

	got, err := v.GetUint16(0, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x0102 {
		t.Errorf("GetUint16 through offset window = %#x, want 0x0102", int(got))
	}

	if err := v.SetUint8(1, 0x77); err != nil {
		t.Fatal(err)
	}
	if buf.Bytes()[3] != 0x77 {
		t.Errorf("write did not land at byteOffset+localOffset: % x", buf.Bytes())
	}
	if buf.Bytes()[0] != 0xAA || buf.Bytes()[4] != 0xCC {
		t.Errorf("write escaped the view window: % x", buf.Bytes())
	}
}
