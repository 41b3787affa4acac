// Package timeline provides the interval primitives shared by every decision
// stage in the edit pipeline.
//
// All stages consume and produce ordered, non-overlapping lists of source-time
// intervals. Compose is the single normalization routine: it sorts, merges
// across small gaps, drops intervals below a minimum duration, and clamps to
// the source bounds. Running Compose after every stage keeps the pipeline's
// notion of "segment" consistent and monotonically shrinking.
package timeline
