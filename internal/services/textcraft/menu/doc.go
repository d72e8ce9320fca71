// Package menu runs the interactive text loop: it renders numbered menus,
// reads one line per choice and drives roster and session operations.
//
// The roster is saved after every top-level cycle. End of input saves once
// more and ends the loop without error.
package menu
