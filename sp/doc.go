// See table.go for Table, Build, and the descendant/ascendant walks
// shared by hhl, uhhl, and ghl.
package sp
