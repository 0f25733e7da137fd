package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// NaN is the only value of an OrderedKey that has no order.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Unordered reports whether k can not be ordered against any key,
// itself included. Only a floating-point NaN does that.
func Unordered[K OrderedKey](k K) bool {
	return k != k
}

// Compare is a partial order over OrderedKey.
// Assume i is the new key.
//  1. i == j (return 0)
//  2. i > j (return 1), turn to right part.
//  3. i < j (return -1), turn to left part.
//
// ok is false if i and j are unordered, then res is meaningless.
func Compare[K OrderedKey](i, j K) (res int64, ok bool) {
	if Unordered(i) || Unordered(j) {
		return 0, false
	}
	if i == j {
		return 0, true
	} else if i < j {
		return -1, true
	}
	return 1, true
}
