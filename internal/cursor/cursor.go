// Package cursor walks the pre-split token stream of one keyword block,
// grouping tokens into slash-terminated records.
package cursor

import (
	"fmt"

	"github.com/golangsched/schedkw/sched"
)

// Terminator ends a record; a record consisting solely of the terminator
// ends the keyword block.
const Terminator = "/"

// Cursor consumes tokens starting at a given index and reports the resume
// position for the next keyword.
type Cursor struct {
	tokens []string
	index  int
}

// New returns a cursor over tokens, positioned at index.
func New(tokens []string, index int) *Cursor {
	return &Cursor{tokens: tokens, index: index}
}

// Index returns the position of the first unconsumed token.
func (c *Cursor) Index() int { return c.index }

// Line returns the tokens of the next record, excluding its terminator.
// done is true when the block's end marker (a lone terminator) was consumed;
// the line is nil in that case. Running out of tokens before a terminator is
// ErrMalformedRecord.
func (c *Cursor) Line() (line []string, done bool, err error) {
	start := c.index
	for c.index < len(c.tokens) {
		tok := c.tokens[c.index]
		c.index++
		if tok == Terminator {
			if len(line) == 0 {
				return nil, true, nil
			}
			return line, false, nil
		}
		line = append(line, tok)
	}
	c.index = start
	return nil, false, fmt.Errorf("%w: token stream ended inside keyword block", sched.ErrMalformedRecord)
}

// Block consumes every remaining record of the keyword verbatim, through the
// end marker. Interior terminators are kept in the result; the end marker is
// not. Used for keywords whose payload is stored uninterpreted.
func (c *Cursor) Block() ([]string, error) {
	start := c.index
	var raw []string
	sawRecord := false
	for c.index < len(c.tokens) {
		tok := c.tokens[c.index]
		c.index++
		if tok == Terminator && !sawRecord {
			return raw, nil
		}
		if tok == Terminator {
			sawRecord = false
		} else {
			sawRecord = true
		}
		raw = append(raw, tok)
	}
	c.index = start
	return nil, fmt.Errorf("%w: token stream ended inside keyword block", sched.ErrMalformedRecord)
}
