// Package clipboard copies rendered sprites and their text form to the
// system clipboard.
//
// Images travel as PNG. Text travels as '#'/'.' rows, the same form the
// grid package parses, so a copied sprite can be pasted back into an
// editor session.
package clipboard

import "errors"

// ErrNoText is returned by ReadText when the clipboard holds no text.
var ErrNoText = errors.New("clipboard does not contain text data")
