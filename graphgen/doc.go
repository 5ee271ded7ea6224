// See graphgen.go for Path, Cycle, Star, Complete, RandomSparse, and
// RandomRegular.
package graphgen
