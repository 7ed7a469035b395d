package catmap

// Package catmap converts seismic event catalogs (package event) to and from
// generic structures of map[string]any, []any and scalar leaves:
//
// - ToGeneric flattens a catalog object graph into plain structured data
//   ready for JSON/YAML encoding (see codec/).
// - ToCatalog rebuilds the typed object graph from such data, bottom-up,
//   using a registry of key-to-type bindings derived from the hierarchy's
//   class declarations.
//
// Design policy:
// - Keep only public APIs in the root package; naming and copying helpers
//   live under internal/.
// - The converter is a structural re-assembler, not a validator: record
//   construction and validation failures from the event package propagate
//   unmodified, and unknown keys pass through as opaque data.
// - The registry and the extractor cache are append-only; the defaults are
//   built once per process and safe for concurrent readers.
//
// Typical usage:
//
//  node := catmap.ToGeneric(cat)
//  data, err := json.Marshal(node)
//
//  cat, err := catmap.ToCatalog(node)
//  cat, err := catmap.ToCatalog(node, catmap.ConvertOpt{Destructive: true})
