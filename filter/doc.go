// Package filter prunes whole sections from a canonical replay tree.
//
// Pruning never empties a section partially, except within map data where
// tiles and resource locations (mineral fields and geysers) are selected
// independently of the rest of the section.
package filter
