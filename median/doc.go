// Package median maintains the running median of a numeric stream.
//
// Overview:
//
//   - A Tracker splits the samples seen so far between two heaps: a
//     max-heap over the lower half and a min-heap over the upper half.
//     Their roots bracket the median at all times.
//   - Add routes each new sample to the correct half, then moves one root
//     across whenever the halves drift more than one element apart. The
//     sizes therefore never differ by more than one.
//   - Median reads the answer in O(1): the root of the larger half when the
//     count is odd, the mean of both roots when it is even.
//
// Complexity:
//
//	Add:         O(log n)
//	Median, Len: O(1)
//
// Errors:
//
//   - ErrNoSamples - Median on a tracker that has seen no samples.
//
// A single Tracker is not safe for concurrent use; distinct trackers share
// no state.
//
// See also:
//
//   - heap for the two halves underneath.
package median
