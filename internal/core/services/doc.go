// Package services implements the driving port interfaces.
// Services contain the core query and schema-assembly logic and
// orchestrate calls to driven ports (store adapters).
package services
