// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LineSource: Reads an input file as lines
//   - AuthorParser: Turns one author line into an Author
//   - InstituteParser: Turns one institute line into an Institute
//   - Renderer: Prints a Listing in one RenderMode
//
// # Optional Interfaces
//
// These can be nil:
//
//   - ConfigStore: Stored defaults for the command-line options
//   - FileWatcher: Change notification for --watch
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, parser, or renderer package
package driven
