// Package input provides the interactive terminal prompts the yml2block CLI
// needs: currently only a yes/no confirmation, used before overwriting an
// existing output file.
package input
