// Package main hosts the cdinventory CLI entrypoint and command graph.
//
// Running the binary without a subcommand starts the interactive menu shell.
// The list, add, and remove subcommands perform the same store operations
// non-interactively: load the snapshot, apply one change, save it back.
// Configuration resolution and logger construction are centralized in the
// command context so subcommands only deal with their own flags.
package main
