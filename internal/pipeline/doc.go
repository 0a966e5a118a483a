// Package pipeline orchestrates the duplicate-finding stages.
//
// A scan is a strictly sequential pipeline: fetch every project page from the
// API, then group the accumulated projects and detect duplicates. Steps share
// a ScanState that accumulates the intermediate results; control flows only
// forward, never back into an earlier stage.
//
// Design decision: We use a Step interface rather than inlining the stages
// in the command because:
// 1. Each step can be tested in isolation with a synthetic ScanState
// 2. It provides a Name() method for logging and debugging
// 3. Context cancellation is handled uniformly between steps
package pipeline
