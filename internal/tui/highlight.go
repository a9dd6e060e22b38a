package tui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const highlightStyle = "monokai"

// lexerForContentType matches a response Content-Type against the MIME types
// registered by chroma's lexers
func lexerForContentType(contentType string) chroma.Lexer {
	if contentType == "" {
		return nil
	}
	for _, l := range lexers.GlobalLexerRegistry.Lexers {
		for _, mt := range l.Config().MimeTypes {
			if strings.Contains(contentType, mt) {
				return l
			}
		}
	}
	return nil
}

// prettyBody indents JSON bodies and leaves everything else untouched
func prettyBody(body string) string {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(body), "", "  "); err != nil {
		return body
	}
	return out.String()
}

// highlightBody colours body for the terminal. The plain text is returned
// when no lexer applies or tokenising fails.
func highlightBody(contentType, body string) string {
	lexer := lexerForContentType(contentType)
	if lexer == nil {
		lexer = lexers.Analyse(body)
	}
	if lexer == nil {
		return body
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, body)
	if err != nil {
		return body
	}

	var out strings.Builder
	if err := formatter.Format(&out, style, iterator); err != nil {
		return body
	}
	return out.String()
}
