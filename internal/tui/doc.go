// Package tui renders the portfolio in a terminal with Bubble Tea.
//
// The page is laid out as one tall document inside a scrolling viewport.
// Section line ranges feed the navigation scroll-spy the same way element
// bounding boxes do in a browser, so the terminal and the web renderer share
// the navigation and carousel controllers unchanged.
package tui
