// Package retake decides, among near-duplicate transcript segments, which
// spoken take survives.
//
// The resolver walks segments in order and applies a fixed rule chain: a
// segment mostly contained in its longer successor is a truncated preview
// and drops; an A-B-A pattern with a trivial aside in the middle drops the
// restatement; everything else resolves through a windowed lookback that
// drops the shorter of a similar pair, with a tie going against the earlier
// take. A minimum-keep guard prevents dropping either side of a pair when
// the survivor would be too short to stand alone.
//
// Two lighter cleanups complement the resolver: trimming stuttered leading
// words inside a segment, and cutting micro-repetitions where consecutive
// segments open on the same words.
package retake
