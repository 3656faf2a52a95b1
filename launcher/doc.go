// Package launcher starts a selected script with the configured Python
// interpreter. The strategy (new terminal window, or inline in the current
// console) is chosen once at startup by Detect.
package launcher
