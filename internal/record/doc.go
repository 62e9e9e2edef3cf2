// Package record captures a walk together with its provenance and writes
// it out as a flat text dump.
//
// A Recorder refuses to run when the workspace has uncommitted changes,
// because the revision stamped on the record would not describe the code
// that produced it. Records are written once and never read back.
package record
