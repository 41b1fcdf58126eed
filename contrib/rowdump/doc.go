// Package rowdump turns row files into a SQL script.
//
// Each input is decoded with rowsource. Every batch becomes a comment, an
// optional DELETE of its keys, chunked INSERT statements and its UPDATE
// statements. The script is written to a file or stdout, and can also be
// run in one transaction through sqlexec.
//
//	rowdump -output creature.sql -delete creature.json creature_addon.yaml
package rowdump
