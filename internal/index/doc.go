// Package index builds the reference index: for every entity of a type it
// resolves the lookup-reference fields to display labels and swaps the
// projection rows in the store for the fresh set. The index is what list
// views read, so reference columns render without touching the source
// entities.
package index
