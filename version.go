package cinta

// Version is the module version reported by the CLI and the HTTP server.
// Overridable at build time via -ldflags "-X github.com/aretw0/cinta.Version=...".
var Version = "0.4.0"
