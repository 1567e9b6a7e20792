// Package jsondoc provides a dynamic JSON document with path-based typed
// field access.
//
// Some account endpoints return shapes that differ between API versions in
// nesting and field naming. Those responses are read field by field through
// a Doc rather than bound to a fixed struct, so the mapper can coerce each
// value explicitly and tolerate absent fields. Endpoints with stable shapes
// bypass this package and use schema-bound decoding directly.
package jsondoc
