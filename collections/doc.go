// Package collections works through slices, maps and strings.
//
// The chapter closes with three exercises, all implemented and tested here:
//
//   - Median and mode of a list of integers
//   - Converting text to pig latin
//   - A tiny company directory: add employees to departments, list a
//     department or the whole company alphabetically
//
// Notes that matter when coming from other languages:
//
//   - Slices grow with append, which may or may not reallocate. Holding on
//     to the old slice after append is the classic aliasing trap.
//   - Map iteration order is randomized on purpose. Sorted output requires
//     collecting the keys and sorting them.
//   - Strings are immutable byte slices; ranging over one yields runes,
//     indexing yields bytes. Both views are exercised by the pig latin
//     function, which has to care about the first rune, not the first byte.
package collections
