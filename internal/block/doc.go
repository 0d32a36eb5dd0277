// Package block defines the position-annotated document model for Dataverse
// metadata blocks, together with the fixed structural grammar (section
// keywords, required and permitted fields per record kind).
//
// Both input syntaxes (YAML and TSV) normalize into the same Document tree.
// The tree is built once per input file and never mutated afterwards;
// positions are carried for diagnostics only and are ignored by equality.
package block
