// Package protocolpb holds the generated snapshot wire messages.
package protocolpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative snapshot.proto
