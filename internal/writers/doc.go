// Package writers renders command results (written files, generated shell
// commands, job scripts) to stdout.
//
// Design:
//   • Writers own all presentation knowledge (text vs JSON).
//   • Chunkers and builders stay output-agnostic and return plain results.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
