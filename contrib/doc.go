// Package contrib provides tools built on top of the sqlgen packages.
//
// Everything in this directory touches the outside world: files, databases
// or the command line. None of it is needed to build SQL text, and it is
// outside of the backward compatibility guarantees of the core packages.
//
// [github.com/wdetools/sqlgen/contrib/rowsource] decodes JSON, YAML, CBOR and
// MessagePack row files. [github.com/wdetools/sqlgen/contrib/sqlexec] runs
// generated scripts on a MySQL-compatible server. The
// [github.com/wdetools/sqlgen/contrib/rowdump] command joins the two.
package contrib
