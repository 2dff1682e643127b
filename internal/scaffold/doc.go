// Package scaffold renders the embedded neutrino project templates and
// writes them to disk. It powers the neutrino-new root command: a static,
// ordered template table is filtered by project type and feature switches,
// every selected template is rendered against one project.Context, and the
// results are emitted under the project root.
package scaffold
