// Package cmd implements the minigrep command.
package cmd
