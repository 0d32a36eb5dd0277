// Package reader loads metadata block files from either surface syntax
// (YAML or Dataverse TSV) into the shared document model and runs the full
// lint pass over the result.
//
// Both readers degrade instead of failing: structural problems become
// violations, and only an unreadable file is reported as an error.
package reader
