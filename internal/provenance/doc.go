// Package provenance supplies the facts recorded next to a result: whether
// the workspace is clean, which revision produced it, when it ran, and on
// which runtime.
//
// Each fact comes from a small interface so recorders can be driven by
// fakes in tests. Git is the production Workspace; it shells out to the
// git binary in the workspace directory.
package provenance
