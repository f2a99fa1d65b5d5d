// Package tools exposes the auction adapter as a set of tools on a stdio
// tool server. Each handler runs the same pipeline: validate arguments,
// issue one upstream call, classify the exchange, render the outcome as a
// structured JSON result. No prose, only fields.
package tools
