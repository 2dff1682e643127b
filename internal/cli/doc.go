// Package cli defines the Cobra command tree for the neutrino-new CLI. The
// root command generates a project; subcommands list the template table,
// manage user defaults and print build information. Commands only parse
// flags, resolve option precedence and format output; rendering and file
// emission live in the scaffold package.
package cli
