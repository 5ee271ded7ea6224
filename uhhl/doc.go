// See uhhl.go for WeightKind, Builder, and Run.
package uhhl
