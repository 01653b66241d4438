// Package chronovm implements the 3-bit register machine from Advent of
// Code 2024 day 17 ("Chronospatial Computer") along with a search that
// reconstructs the smallest initial A register making a program print its
// own listing.
//
// A Program is validated once and then shared read-only by any number of
// Machines. Each Machine owns a copy of the registers, so trial runs never
// leak state into one another.
package chronovm
