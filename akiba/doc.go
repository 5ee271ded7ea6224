// See akiba.go for Builder and Run.
package akiba
