// Package app wires a parsed command line to the scenario loader, the
// solver and the two outputs: a plain-text report or the terminal viewer.
package app
