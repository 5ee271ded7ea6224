// See ghl.go for Builder and Run; amds.go and proxy.go hold Run's two
// supporting data structures.
package ghl
