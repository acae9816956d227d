// Package plan defines the structured output of planning a request: an
// ordered sequence of typed steps plus the constraints under which the plan
// was produced.
//
// A Plan is constructed fresh per request, is never mutated after assembly,
// and has no persisted identity. Two serializations exist:
//
//   - Encode renders the interchange document (schema field order: goal,
//     original_request, steps, constraints) for CLI output.
//   - Canonical renders the comparison form: every object's keys in
//     lexicographic order at every nesting level, so equality of plans is
//     equality of canonical text regardless of construction order.
//
// The Action constants cover the vocabulary emitted by the deterministic
// planner. The action field itself is an open string at the schema level;
// non-deterministic baseline generators may emit actions outside this set.
package plan
