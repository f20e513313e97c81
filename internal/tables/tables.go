package tables

import "github.com/roach88/rbin/internal/ir"

// at returns t(x, y).
func at(t ir.CayleyTable, x, y string) (string, bool) {
	row, ok := t[x]
	if !ok {
		return "", false
	}
	v, ok := row[y]
	return v, ok
}

// of returns u(x).
func of(u ir.UnaryTable, x string) (string, bool) {
	v, ok := u[x]
	return v, ok
}

// Associative reports whether t(x, t(y, z)) = t(t(x, y), z) for all x, y, z.
func Associative(t ir.CayleyTable) bool {
	for x := range t {
		for y := range t {
			for z := range t {
				yz, ok1 := at(t, y, z)
				xy, ok2 := at(t, x, y)
				if !ok1 || !ok2 {
					return false
				}
				left, ok1 := at(t, x, yz)
				right, ok2 := at(t, xy, z)
				if !ok1 || !ok2 || left != right {
					return false
				}
			}
		}
	}
	return true
}

// Commutative reports whether t(x, y) = t(y, x) for all x, y.
func Commutative(t ir.CayleyTable) bool {
	for x := range t {
		for y := range t {
			xy, ok1 := at(t, x, y)
			yx, ok2 := at(t, y, x)
			if !ok1 || !ok2 || xy != yx {
				return false
			}
		}
	}
	return true
}

// Idempotent reports whether t(x, x) = x for all x.
func Idempotent(t ir.CayleyTable) bool {
	for x := range t {
		if xx, ok := at(t, x, x); !ok || xx != x {
			return false
		}
	}
	return true
}

// IsLeftIdentity reports whether t(e, x) = x for all x.
func IsLeftIdentity(t ir.CayleyTable, e string) bool {
	for x := range t {
		if v, ok := at(t, e, x); !ok || v != x {
			return false
		}
	}
	return true
}

// IsRightIdentity reports whether t(x, e) = x for all x.
func IsRightIdentity(t ir.CayleyTable, e string) bool {
	for x := range t {
		if v, ok := at(t, x, e); !ok || v != x {
			return false
		}
	}
	return true
}

// IsLeftZero reports whether t(z, x) = z for all x.
func IsLeftZero(t ir.CayleyTable, z string) bool {
	for x := range t {
		if v, ok := at(t, z, x); !ok || v != z {
			return false
		}
	}
	return true
}

// IsRightZero reports whether t(x, z) = z for all x.
func IsRightZero(t ir.CayleyTable, z string) bool {
	for x := range t {
		if v, ok := at(t, x, z); !ok || v != z {
			return false
		}
	}
	return true
}

// IsLeftInverse reports whether t(inv(x), x) = e for all x.
func IsLeftInverse(t ir.CayleyTable, inv ir.UnaryTable, e string) bool {
	for x := range t {
		ix, ok := of(inv, x)
		if !ok {
			return false
		}
		if v, ok := at(t, ix, x); !ok || v != e {
			return false
		}
	}
	return true
}

// IsRightInverse reports whether t(x, inv(x)) = e for all x.
func IsRightInverse(t ir.CayleyTable, inv ir.UnaryTable, e string) bool {
	for x := range t {
		ix, ok := of(inv, x)
		if !ok {
			return false
		}
		if v, ok := at(t, x, ix); !ok || v != e {
			return false
		}
	}
	return true
}

// LeftDistributive reports whether
// t1(x, t2(y, z)) = t2(t1(x, y), t1(x, z)) for all x, y, z.
func LeftDistributive(t1, t2 ir.CayleyTable) bool {
	for x := range t1 {
		for y := range t1 {
			for z := range t1 {
				yz, ok1 := at(t2, y, z)
				xy, ok2 := at(t1, x, y)
				xz, ok3 := at(t1, x, z)
				if !ok1 || !ok2 || !ok3 {
					return false
				}
				left, ok1 := at(t1, x, yz)
				right, ok2 := at(t2, xy, xz)
				if !ok1 || !ok2 || left != right {
					return false
				}
			}
		}
	}
	return true
}

// RightDistributive reports whether
// t1(t2(x, y), z) = t2(t1(x, z), t1(y, z)) for all x, y, z.
func RightDistributive(t1, t2 ir.CayleyTable) bool {
	for x := range t1 {
		for y := range t1 {
			for z := range t1 {
				xy, ok1 := at(t2, x, y)
				xz, ok2 := at(t1, x, z)
				yz, ok3 := at(t1, y, z)
				if !ok1 || !ok2 || !ok3 {
					return false
				}
				left, ok1 := at(t1, xy, z)
				right, ok2 := at(t2, xz, yz)
				if !ok1 || !ok2 || left != right {
					return false
				}
			}
		}
	}
	return true
}

// Absorbs reports whether t1(x, t2(x, y)) = x for all x, y.
func Absorbs(t1, t2 ir.CayleyTable) bool {
	for x := range t1 {
		for y := range t1 {
			xy, ok := at(t2, x, y)
			if !ok {
				return false
			}
			if v, ok := at(t1, x, xy); !ok || v != x {
				return false
			}
		}
	}
	return true
}
