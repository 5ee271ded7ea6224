// See labeling.go for the Labeling type, Query, and the file format.
package labeling
