// Package numeric provides a UInt64 type with explicit 32-bit part
// access and checked arithmetic that reports overflow as a classified
// error instead of wrapping around silently.
package numeric
