// Package audit houses concrete implementations of the core.AuditLog: an
// in-memory append-only log and a line-delimited JSON writer sink for
// operator consumption. The core only ever writes records; nothing reads
// them back at request time.
package audit
