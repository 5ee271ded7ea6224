// See labelcheck.go for Checker and Run.
package labelcheck
