// Package project holds the options a user picks for a new neutrino project
// and derives from them the flat substitution context that every scaffold
// template is rendered against. The context is computed once per invocation
// and applied uniformly.
package project
