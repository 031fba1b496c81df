package schedkw

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangsched/schedkw/internal/parser"
	"github.com/golangsched/schedkw/sched"
)

// Tokenize splits raw deck text into the flat token stream the keyword
// parser consumes: whitespace/newline delimited, "--" comments stripped,
// quoted strings kept as single tokens (quotes included), and the record
// terminator always its own token even when written flush against a value.
func Tokenize(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		tokens = append(tokens, tokenizeLine(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return tokens, nil
}

func tokenizeLine(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			// Comment runs to end of line.
			return tokens
		case c == '\'' || c == '"':
			end := strings.IndexByte(text[i+1:], c)
			if end < 0 {
				// Unterminated quote: take the rest of the line verbatim.
				tokens = append(tokens, text[i:])
				return tokens
			}
			tokens = append(tokens, text[i:i+end+2])
			i += end + 2
		default:
			start := i
			for i < len(text) && text[i] != ' ' && text[i] != '\t' && text[i] != '\r' {
				i++
			}
			tokens = append(tokens, splitTerminator(text[start:i])...)
		}
	}
	return tokens
}

// splitTerminator peels a trailing record terminator off a token written
// without separating whitespace ("5/").
func splitTerminator(tok string) []string {
	if len(tok) > 1 && strings.HasSuffix(tok, "/") {
		return []string{tok[:len(tok)-1], "/"}
	}
	return []string{tok}
}

// ParseDeck tokenizes a SCHEDULE section and parses its keyword blocks in
// document order. A leading SCHEDULE header token is skipped and an END
// token stops the walk. INCLUDE records are returned like any other
// keyword; resolving and parsing the referenced files is the caller's
// policy. The first failing block aborts the parse.
func ParseDeck(r io.Reader, widths sched.WidthTable, opts ...Option) ([]*sched.Keyword, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	log := parser.Logger{L: cfg.logger}

	tokens, err := Tokenize(r)
	if err != nil {
		return nil, err
	}

	var keywords []*sched.Keyword
	i := 0
	for i < len(tokens) {
		name := tokens[i]
		if name == "END" {
			break
		}
		if name == "SCHEDULE" && i == 0 {
			i++
			continue
		}
		kw, next, err := parser.ParseKeyword(name, tokens, i+1, widths, log)
		if err != nil {
			return keywords, err
		}
		keywords = append(keywords, kw)
		i = next
	}
	return keywords, nil
}
