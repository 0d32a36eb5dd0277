// Package output provides styled terminal output for the yml2block CLI.
//
// Lint findings and status messages go through this package so severity
// coloring stays consistent between the check and convert commands.
package output
