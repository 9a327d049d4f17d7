// Package preflight provides readiness checks for the filesystem paths
// cdinventory depends on.
//
// The CLI "config validate" command runs RunAll and prints each Result so a
// user can see, before starting the shell, whether the snapshot directory is
// writable and whether an existing snapshot file is readable.
package preflight
