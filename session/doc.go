// Package session ties together one loaded Program, one configured
// Processor, and the Scheduler bound to them, replacing the reference
// implementation's module-level _program/_processor/_scheduler globals
// (spec.md §9 Design Notes) with an explicit, independently constructible
// value. A Session is not safe for concurrent use — spec §5 reserves
// exclusive ownership of a Processor to the Scheduler run in progress.
package session
