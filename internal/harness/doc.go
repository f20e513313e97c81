// Package harness runs YAML conformance scenarios against the algebra,
// order and engine packages.
//
// # Scenario Format
//
//	name: two_element_lattice
//	description: "Two-element chain is a lattice and canonises to ⟘ < ⟙"
//	variant: lattice            # optional, classified from names otherwise
//	operations:
//	  - name: join
//	    binary: {"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "1"}}
//	  - name: invo
//	    unary: {"0": "1", "1": "0"}
//	remap: {"0": "a", "1": "b"} # optional, applied before canonise
//	canonise: true
//	ingest: true                # also push the model through the engine
//	batch: test-batch-001
//	expect:
//	  valid: true               # or violation: "join is not commutative"
//	  law: join_commutative
//	  variant: lattice
//	  symbols: ["⟘", "⟙"]
//	  hasse: [["⟙", "⟘"]]
//	  proof_text: |
//	    ...
//	assertions:
//	  - type: apply
//	    op: join
//	    args: ["⟘", "⟙"]
//	    result: "⟙"
//
// # Assertion Types
//
//   - apply: an operation applied to args yields result
//   - above: the elements strictly below element (order.More) equal expect
//   - below: the elements strictly above element (order.Less) equal expect
//   - rank: order.Rank equals expect
//   - diagnose: every failing law of the variant, in pipeline order
//
// # Deterministic Testing
//
// Ingestion runs against a fresh in-memory catalogue with a fixed batch
// token (testutil.FixedBatchGenerator), so snapshots are reproducible and
// can be compared with golden files.
package harness
