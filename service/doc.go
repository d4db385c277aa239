// Package service implements the control-plane action surface of spec §6
// (create/list/relabel/compute) as a single Go type shared by both the
// gRPC server and the HTTP/JSON gateway of §4.8, so there is exactly one
// implementation of the contract underneath two transports.
package service
