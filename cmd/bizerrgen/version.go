package main

var (
	// Version holds the generator version.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)
