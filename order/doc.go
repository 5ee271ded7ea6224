// See order.go for Read, Write, and ByDegree.
package order
