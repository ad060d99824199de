// Package model defines the catalog data structures shared by every other
// package in albums.
//
// # Catalog
//
// Catalog is the root entity: a three-level Artist -> Album -> Track
// hierarchy describing one snapshot of a music collection. A catalog is
// built by folding Triple records into it:
//
//	cat := model.NewCatalog()
//	cat.Add(model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"})
//
// # Normalization
//
// Names are keyed by a fixed normalization policy (strip ASCII punctuation,
// trim, lower-case) so that cosmetic spelling differences between sources do
// not create false diffs. Display names keep the spelling first seen in the
// source. See Normalize.
//
// # Triples
//
// Triple is the common record shape produced by both indexing sources
// (directory scan and library export). Missing fields are represented by
// the UnknownArtist, UnknownAlbum and UnknownTrack placeholders.
package model
