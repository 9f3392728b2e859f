// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import "fmt"

// WindingRule decides which winding numbers are inside a filled path.
type WindingRule int

const (
	NonZero WindingRule = iota
	Odd
	Zero
	Even
)

func (w WindingRule) String() string {
	switch w {
	case NonZero:
		return "non_zero"
	case Odd:
		return "odd"
	case Zero:
		return "zero"
	case Even:
		return "even"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(w))
	}
}

func (w WindingRule) Inside(winding int) bool {
	switch w {
	case NonZero:
		return winding != 0
	case Odd:
		return winding&1 != 0
	case Zero:
		return winding == 0
	case Even:
		return winding&1 == 0
	default:
		panic(fmt.Sprintf("invalid winding rule %d", int(w)))
	}
}

// IsComplement reports whether the rule selects the outside of the
// corresponding non-zero or odd rule.
func (w WindingRule) IsComplement() bool {
	return w == Zero || w == Even
}
