// SPDX-License-Identifier: MIT

// Package concurrency coordinates the parallel phases of analytics runs.
//
// A Pool is a fixed number of worker slots. One Pool may be shared by any
// number of concurrent runs: each task holds a slot for its whole lifetime, so
// the total parallelism across runs never exceeds Size().
//
// Pool.Run dispatches tasks under an errgroup:
//
//   - the first task error cancels the context seen by every other task;
//   - a panic inside a task is recovered and reported as an errkind Execution
//     error rather than crashing the process;
//   - Run returns only after every started task has finished.
//
// Work is split with Partitions (contiguous, equal item counts),
// WeightedPartitions (contiguous, equal total weight) or Batches (fixed size).
package concurrency
