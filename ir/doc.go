// Package ir provides the in-memory value tree for UCL documents.
//
// A parsed document is a tree of *Node values. Each Node carries a Type
// discriminator together with the payload for that type:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 or Float64 is non-nil
//   - StringType: String
//   - ArrayType: Values, positionally ordered
//   - ObjectType: parallel Fields (string-typed keys) and Values
//
// A Node owns its children exclusively; trees are never shared between
// parse calls and the grammar cannot construct cycles. Object entry
// order is an implementation detail and callers must not rely on it.
package ir
