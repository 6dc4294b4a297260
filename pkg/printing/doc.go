// Package printing hands rendered forms to a print facility. A Trigger is
// fire-and-forget: activation invokes the facility once and never reports
// failures back to the caller.
package printing
