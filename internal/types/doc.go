/*
Package types defines the request, response and history records shared by the
executor, the history store and the TUI.

A new Request carries the default User-Agent, Accept and Host headers. The
Host entry is only a fallback; the executor takes the host from the URL when
one is present.
*/
package types
