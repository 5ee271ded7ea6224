// See dense.go for Dense and impl_floydwarshall.go for FloydWarshall.
package matrix
