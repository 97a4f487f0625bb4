// Package validation holds the pre-flight checks the order orchestration
// runs before it persists anything: customer and address ownership through
// the customer collaborator, and menu selection pricing through the
// restaurant collaborator.
package validation
