// Package cli implements the mixedproduct command:
// configuration loading, source parsing, logging setup and output rendering.
package cli
