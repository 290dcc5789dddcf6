// Package gff3 partitions a GFF3 annotation file into one file per
// sequence region (column 1), copying lines verbatim in file order.
package gff3
