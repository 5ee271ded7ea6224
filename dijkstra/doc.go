// See dijkstra.go for the Engine type, its options, and Run.
package dijkstra
