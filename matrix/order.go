// SPDX-License-Identifier: MIT
// Package matrix - loop order selection for Mul.
//
// Purpose:
//   - Name the two supported nestings of the naive triple loop (jk, kj).
//   - Parse user input ("jk", "kj", "ijk", "ikj") into a LoopOrder.
//
// Design notes:
//   - The outer loop is always the output row i; only the inner two loops differ.
//   - *LoopOrder implements pflag.Value (Set/String/Type) so it binds to CLI flags directly.

package matrix

import (
	"fmt"
	"strings"
)

// LoopOrder selects the nesting of the three index variables in Mul.
// The outer loop is always the output row i; the order names the two inner loops.
type LoopOrder int

const (
	// OrderJK nests i → j → k: the innermost loop walks a column of B (stride = B.cols).
	OrderJK LoopOrder = iota
	// OrderKJ nests i → k → j: the innermost loop walks a row of B and a row of the result (stride 1).
	OrderKJ
)

const (
	orderNameJK = "jk"
	orderNameKJ = "kj"
)

// Orders lists every supported loop order in declaration order.
func Orders() []LoopOrder {
	return []LoopOrder{OrderJK, OrderKJ}
}

// String returns the short name ("jk" or "kj").
func (o LoopOrder) String() string {
	switch o {
	case OrderJK:
		return orderNameJK
	case OrderKJ:
		return orderNameKJ
	default:
		return fmt.Sprintf("LoopOrder(%d)", int(o))
	}
}

// Valid reports whether o is one of the supported orders.
func (o LoopOrder) Valid() bool {
	return o == OrderJK || o == OrderKJ
}

// ParseLoopOrder maps "jk"/"ijk" and "kj"/"ikj" (case-insensitive) to a LoopOrder.
// Unknown names return ErrUnknownLoopOrder.
func ParseLoopOrder(s string) (LoopOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case orderNameJK, "ijk":
		return OrderJK, nil
	case orderNameKJ, "ikj":
		return OrderKJ, nil
	default:
		return 0, fmt.Errorf("ParseLoopOrder(%q): %w", s, ErrUnknownLoopOrder)
	}
}

// Set implements pflag.Value so a LoopOrder can be bound directly to a flag.
func (o *LoopOrder) Set(s string) error {
	v, err := ParseLoopOrder(s)
	if err != nil {
		return err
	}
	*o = v

	return nil
}

// Type implements pflag.Value.
func (o *LoopOrder) Type() string { return "order" }
