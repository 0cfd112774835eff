// Package engine evaluates the fixed set of analytical questions (q1..q5)
// over an in-memory dataset snapshot.
//
// Each question is a batch pipeline: inner equi-joins over hash indexes,
// an optional equality filter, group counting, a multi-key stable sort with
// per-key direction, and top-N truncation. The engine returns a normalized
// two-column result table of (subject, statistic) rows and never touches
// display metadata; chart labels live at the renderer boundary.
//
// Determinism:
//
// Evaluation is single-threaded and synchronous. Joins iterate the left
// table in input order and append right matches in input order, so the only
// permitted nondeterminism is q5's undeclared tie-break: rows with equal
// altitude difference keep the order produced by the final join, which
// itself follows route input order. Every other ordering, including ties at
// the truncation boundary, is fully determined by the declared sort chain
// plus a canonical pre-sort of group keys.
//
// Inner-join semantics are load-bearing: route rows whose airline or
// endpoint IDs match nothing are silently dropped, never counted.
package engine
