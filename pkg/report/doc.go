// Package report renders upgrade findings.
//
// Three formats are supported:
//
//   - json: the findings verbatim, as an indented JSON array
//   - text: an indented JSON array of {id, resolution} pairs
//   - md: a Markdown narrative with a per-finding section and a summary of
//     the commands to run and the files to modify
//
// Rendering is deterministic for a given input; the only clock access is
// through Options.Now.
package report
