// Package dotenv reads and writes KEY=VALUE environment files and connects
// them to schema validation.
//
// Parsing is deliberately forgiving: blank lines and comment lines are
// skipped, values may be wrapped in single or double quotes, and a missing
// file behaves as an empty environment rather than an error. Writing is
// strict and deterministic: fields appear in schema order with their
// annotations, and files are replaced atomically via a temp file and rename.
//
// The package covers four operations: Parse/ParseFile, example generation
// (GenerateExample/WriteExample), file validation (ValidateFile) and merging
// values across files (Sync).
package dotenv
