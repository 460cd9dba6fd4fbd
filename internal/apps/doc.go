// Package apps holds the mini-applications launched from the desktop:
// Calculator, Notepad, File Manager and Settings. Each is a self-contained
// widget owning its own state; none of them shares state with another.
package apps
