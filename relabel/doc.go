// Package relabel provides the degree-ordered relabeller described in
// spec §4.3. See relabel.go for the algorithm.
package relabel
