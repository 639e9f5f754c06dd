// SPDX-License-Identifier: EPL-2.0

// Package score reads line-oriented note scores and plays them through a
// synth.Pool.
//
// A score is plain text with one command per line:
//
//	INSTRUMENT VIOLIN
//	NOTE ON 440 0.5
//	NOTE OFF 440
//
// Keywords are case-insensitive. Text after '#' is a comment, and blank or
// comment-only lines are skipped without advancing time. Every other line,
// including one that fails to decode, is followed by one block of rendered
// frames (DefaultBlockFrames unless WithBlockFrames says otherwise).
//
// Player implements audio.Source, so a score can be streamed straight into
// any audio.FrameWriter.
package score
