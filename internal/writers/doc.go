// Package writers turns evaluated nuclides and fit residuals into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, pretty blocks, JSON/JSONL).
//   • core/binding stays domain-only; apps stay orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • Each writer runs in one goroutine fed by a buffered channel.
package writers
