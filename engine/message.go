package engine

import (
	"strings"
)

const (
	blockSize     = 5
	blocksPerLine = 8

	// displayWidth is where the live message wraps on screen.
	displayWidth = 54
)

// MessageBuffer accumulates enciphered letters until they are committed.
type MessageBuffer struct {
	content []rune
}

func (b *MessageBuffer) Append(c rune) {
	b.content = append(b.content, c)
}

func (b *MessageBuffer) Read() string {
	return string(b.content)
}

func (b *MessageBuffer) Len() int { return len(b.content) }

func (b *MessageBuffer) Clear() {
	b.content = b.content[:0]
}

// Lines splits the message for display, displayWidth letters a line.
func (b *MessageBuffer) Lines() []string {
	var lines []string
	for start := 0; start < len(b.content); start += displayWidth {
		end := start + displayWidth
		if end > len(b.content) {
			end = len(b.content)
		}
		lines = append(lines, string(b.content[start:end]))
	}
	return lines
}

// Format returns the buffer in telegram blocks.
func (b *MessageBuffer) Format() string {
	return FormatBlocks(b.Read())
}

// FormatBlocks drops line breaks and regroups msg into blocks of five
// separated by a space, with a newline in place of the space after every
// eighth block. The separator after the last block is kept.
func FormatBlocks(msg string) string {
	var sb strings.Builder
	n := 0
	for _, c := range msg {
		if c == '\n' || c == '\r' {
			continue
		}
		sb.WriteRune(c)
		n++
		switch {
		case n%(blockSize*blocksPerLine) == 0:
			sb.WriteByte('\n')
		case n%blockSize == 0:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
