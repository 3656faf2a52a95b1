// Package catalog discovers units, subfolders and Python scripts below a
// root directory, and reads script contents for display.
//
// Every call is a fresh snapshot of the filesystem; nothing is cached.
package catalog
