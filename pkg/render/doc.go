// Package render turns validation outcomes into the per-field annotations a
// front end draws next to its inputs.
package render
