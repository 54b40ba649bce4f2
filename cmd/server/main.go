// Package main implements the entry point for the clients API server, which
// exposes CRUD operations on client records over HTTP and manages the
// PostgreSQL schema they are stored in.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
