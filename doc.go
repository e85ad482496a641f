// Package nano holds the wire-level value types shared by the rpc and ws
// sub-packages. The node serializes most numbers as decimal strings, so the
// types here coerce both quoted and bare JSON numbers into Go values.
//
// The actual clients live in nano/rpc (HTTP action protocol) and nano/ws
// (WebSocket subscription protocol).
package nano
