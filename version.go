package sill

// Version is the current library version, surfaced by the CLI.
const Version = "0.2.0"
