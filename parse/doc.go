// Package parse decodes json or yaml documents into ir trees.
//
// Object field order is preserved and json numbers keep their source text,
// so a document that is parsed and encoded again comes out unchanged.
//
//	node, err := parse.Parse(data, parse.ParseTimeFields("StartTime"))
package parse
