// Package dashboard is the navigation controller: main menu of units, unit
// menu of subfolders, and script menu with view and launch.
//
// Menus are kept on an explicit stack. Every render lists the filesystem
// again, so the menus always show what is on disk right now.
package dashboard
