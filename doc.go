// Package matbench times naive dense matrix multiplication to show how loop
// order alone changes performance on row-major data.
//
// What is matbench?
//
//	Two sequential pipelines, one for int32 and one for float64:
//		• generate random A (rowsA×colsA) and B (colsA×colsB)
//		• multiply with the textbook triple loop, i→j→k or i→k→j
//		• time exactly that one multiplication with a monotonic clock
//
// Both loop orders compute the same product. On row-major storage the i→k→j
// order streams B and the result with stride 1 in its innermost loop, while
// i→j→k walks down a column of B and touches a new cache line per step.
//
// Under the hood the module is organized as:
//
//	matrix/        Dense[T], random generators, Mul with LoopOrder
//	timing/        Clock, Measure, text/YAML Reporter
//	bench/         Config, Run (both pipelines), verification, host info
//	cmd/matbench   command-line entry point
//
// Quick start:
//
//	go run ./cmd/matbench --order kj --seed 42 --verify
package matbench
