// Package interactive provides the full-screen pager used to read long
// scripts before deciding whether to run them.
//
// The pager only takes over the screen when stdin, stdout and stderr are
// all terminals and the script does not fit on one screen; otherwise the
// content is handed to the plain line-based viewer.
//
// Keys:
//   - j/k or arrows to scroll, space/b to page
//   - g/G to jump to top/bottom
//   - q or esc to close and return to the menu
package interactive
