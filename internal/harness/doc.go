// Package harness checks that seeded walks reproduce.
//
// A scenario is a YAML file naming walk parameters, an optional literal
// expected walk, and property assertions:
//
//	name: reference-seed-1
//	description: R3 unit test
//	params: {count: 10, x0: 0, step: 1, seed: 1}
//	expect: [-1, 0, 1, 0, -1, -2, -1, 0, -1, -2]
//	assertions:
//	  - type: step_bound
//	  - type: parity
//	  - type: deterministic
//	    repeat: 3
//
// Run generates the walk and evaluates every check, collecting failures
// rather than stopping at the first one.
//
// # Assertion types
//
//   - length: walk has exactly params.count positions
//   - step_bound: consecutive positions (starting from x0) differ by step
//   - parity: with step 1, position i minus x0 has the parity of i+1
//   - deterministic: regenerating repeat times gives the same walk
//   - final: the last position equals value
//
// Golden files under testdata/golden hold canonical JSON walks and are
// compared with goldie; regenerate them with `go test ./... -update`.
package harness
