// Package fasta reads multi-record FASTA files and splits them into one
// file per record, named by the record identifier.
package fasta
