// See hhl.go for WeightKind, Builder, and Run.
package hhl
