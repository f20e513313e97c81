// Package engine implements the ingestion pipeline of the model catalogue.
//
// A batch of raw models (from a reasoner reply or a directory of CUE
// definitions) flows through four steps per model:
//
//  1. Classify the operation names into a variant and build the structure,
//     running the variant's axiom pipeline
//  2. Rename lattice-family structures to canonical symbols
//  3. Compute the content-addressed structure ID
//  4. Write the model (idempotent) and a sighting for (model, label, batch)
//
// Models that fail step 1 or 2 are reported as Rejections; the batch
// carries on. Every write is stamped from a logical Clock, never wall time.
package engine
