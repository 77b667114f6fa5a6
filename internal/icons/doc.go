// Package icons defines the icon tags content entries use to pick a symbol.
//
// A tag states intent only; each renderer decides how to draw it. The web
// renderer maps tags to Lucide icon names and the terminal renderer maps them
// to short glyphs.
package icons
