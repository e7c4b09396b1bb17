// Package xframe contains the core components of xframe, a schema-aware row
// marshaling layer for partitioned frame data, designed for moving typed rows
// across runtime boundaries. This root package defines types which are
// employed during the regular use of the library, as well as in the extension
// of the library, and is an excellent overview of xframe's key concepts.
package xframe
