// Package user provides the user aggregate and the role model for the
// ordering system. Roles are never stored directly: they are derived from
// membership facts (superuser flag plus group memberships) by a single
// resolution function, so group-name comparisons do not leak into the rest
// of the codebase.
package user
