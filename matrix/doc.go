// Package matrix provides dense row-major matrices, uniform random operand
// generators and a naive triple-loop multiplier with a selectable loop order.
//
// The matrix package provides:
//
//   - Dense[T] for T ∈ {int32, float64}: flat storage, offset i*cols + j,
//     safe At/Set that return sentinel errors instead of panicking.
//   - RandomInt32 / RandomFloat64: operands uniform in [0,1000) and
//     [0.0,1000.0), driven by an explicitly passed *rand.Rand.
//   - Mul(a, b, order): Result[i][j] = Σ_k a[i][k]*b[k][j] with either the
//     i→j→k (OrderJK) or the i→k→j (OrderKJ) nesting.
//
// The two orders compute the same product. They differ only in memory access:
// with row-major storage OrderKJ walks B and the result with stride 1 in its
// innermost loop, OrderJK walks a column of B.
//
// Integer products of the two orders are identical bit for bit; float64
// products are compared with EqualApprox.
package matrix
