// Command vidvault manages a personal library of video bookmarks stored in a
// single JSON file.
//
// Every mutating command loads the library, applies the change in memory,
// and writes the whole document back atomically, so a crash mid-write never
// corrupts the file. A corrupted library is backed up and replaced with an
// empty one instead of blocking startup.
package main
