// Package classify infers a conventional-commit type from pending changes.
//
// Two strategies are available. FromDiff scores every added or removed line
// of a staged diff: comment lines add half weight to fix or refactor, code
// lines run six independent keyword checks, and the highest score wins.
// FromFiles takes a plurality vote over modified paths, mapping each path
// through a fixed extension table.
//
// Both functions are pure and never fail. Missing evidence yields chore,
// and ties resolve through fixed priority lists rather than input order.
package classify
