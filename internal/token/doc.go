// Package token defines lexical token kinds for xbase scripts.
// Invariants:
//   - Token.Text is the exact source text of the token.
//   - Token.Value holds the decoded content of string literals (escapes applied).
//   - Keywords of the primary dialect have their own kinds; reserved words of the
//     other dialects are reported as Keyword.
//   - End of input is the EOF kind, never an error.
package token
