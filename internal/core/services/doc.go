// Package services implements the driving port interfaces.
// Services contain the core business logic: input validation, request
// shaping and uniform logging around calls to the driven ports.
//
// Services are pure Go with no external dependencies beyond the
// standard library.
package services
