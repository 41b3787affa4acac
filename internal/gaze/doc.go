// Package gaze narrows candidate speech intervals to the spans where the
// presenter is attention-valid: facing the camera, not reading, not glancing
// away.
//
// Each candidate interval is walked by a guarded state machine over head-pose
// samples taken at a fixed rate. A validity score combines an angular
// deviation term with an angular velocity penalty; fast head moves open a
// cooldown window so a quick glance-and-return does not register as valid
// attention. Entry and exit guards tolerate a bounded number of bad samples
// at the interval edges, stability must hold for a minimum duration before a
// sub-interval is confirmed, and a long invalid run closes it.
//
// Candidate intervals are data-independent, so the filter samples them on a
// bounded worker pool.
package gaze
