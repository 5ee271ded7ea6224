// See types.go for the core Graph/Arc/Vertex/Distance types, builder.go
// for construction and domination removal, and dimacs.go for the
// DIMACS/METIS file formats.
package graph
