// Package logging implements the demolint.Logger interface.
//
// ConsoleLogger writes to stderr (or any writer) with a [VERBOSE] or
// [ERROR] prefix; NullLogger drops everything. Both are safe for
// concurrent use.
package logging
