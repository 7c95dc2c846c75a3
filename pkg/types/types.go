// Package types holds utilities for classifying raw, untyped input values.
package types

// DataType represents data type.
type DataType string

const (
	Bool    DataType = "bool"
	Decimal DataType = "decimal"
	Float   DataType = "float"
	Int     DataType = "int"
	Map     DataType = "map"
	Nil     DataType = "nil"
	Number  DataType = "number"
	Slice   DataType = "slice"
	String  DataType = "string"
	Unknown DataType = "unknown"
)
