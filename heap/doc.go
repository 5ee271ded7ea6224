// See heap.go for the Heap type and its operations.
package heap
