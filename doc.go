// Package calceval evaluates restricted arithmetic expressions from free-text
// calculator input.
//
// Input runs through a fixed pipeline: Unicode glyphs are normalized to
// ASCII, the text is parsed into an expression tree, the tree is checked
// against a whitelist of symbols, operators, and functions, and only then is
// it reduced to a single finite number and formatted for display. The
// whitelist is the safety gate: anything it does not enumerate is rejected,
// so constructs like import(...) or createUnit(...) never reach evaluation.
//
// Trigonometry works in degrees or radians, chosen per call. The previous
// answer is the caller's to keep; pass it back in to bind ans.
//
// The tree is as deep as the input is nested, and the package does not bound
// it. Callers taking hostile input should limit its length before evaluating.
package calceval
