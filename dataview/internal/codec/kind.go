package codec

// Kind identifies one fixed-width numeric type handled by the codec.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindFloat32
	KindFloat64
	KindBigInt64
	KindBigUint64
)

var kindNames = [...]string{
	KindInt8:      "Int8",
	KindUint8:     "Uint8",
	KindInt16:     "Int16",
	KindUint16:    "Uint16",
	KindInt32:     "Int32",
	KindUint32:    "Uint32",
	KindFloat32:   "Float32",
	KindFloat64:   "Float64",
	KindBigInt64:  "BigInt64",
	KindBigUint64: "BigUint64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Size reports the encoded width in bytes.
func (k Kind) Size() uint64 {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	default:
		return 8
	}
}

// IsBig reports whether the kind is a 64-bit integer codec, whose values
// do not fit the float64 number path.
func (k Kind) IsBig() bool {
	return k == KindBigInt64 || k == KindBigUint64
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindInt8, KindUint8,
		KindInt16, KindUint16,
		KindInt32, KindUint32,
		KindFloat32, KindFloat64,
		KindBigInt64, KindBigUint64,
	}
}
