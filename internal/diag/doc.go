// Package diag defines the error taxonomy and the diagnostic model shared by the
// scanner, the parser, the cache and the execution engine.
//
// Two channels exist:
//
//   - Fatal problems are returned as *Error values. The first one aborts the
//     phase; callers match the taxonomy with errors.Is against ErrSyntax,
//     ErrKeywordMisuse, ErrStructural and ErrExecution.
//   - Non-fatal findings (warnings) are emitted through a Reporter, usually a
//     BagReporter that collects them into a Bag.
//
// End of input is never an error: the cursor returns false and the lexer an EOF token.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
package diag
