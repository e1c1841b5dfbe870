// Package server runs the hub's HTTP API and the optional gRPC health
// endpoint side by side and stops both when the process is signalled.
package server
