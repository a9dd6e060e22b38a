/*
Package editor implements the single-line text field used by the URL bar and
the request pane.

The buffer is held as runes and the cursor is a rune index, clamped to
[0, len] after every mutation. Word movement treats letters and digits as word
runes and everything else as a separator. Byte offsets are only produced on
demand for callers that slice the encoded string.
*/
package editor
