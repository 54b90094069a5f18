package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/source"
)

// Cursor представляет собой позицию в файле
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	lenContent, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lenContent
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt читает байт со смещением от текущей позиции, иначе 0
func (c *Cursor) PeekAt(off uint32) byte {
	if c.Off+off >= c.limit() {
		return 0
	}
	return c.File.Content[c.Off+off]
}

// Bump сдвигает позицию на один байт
func (c *Cursor) Bump() {
	if !c.EOF() {
		c.Off++
	}
}

// Mark запоминает текущую позицию
func (c *Cursor) Mark() uint32 { return c.Off }

// SpanFrom строит Span от отметки до текущей позиции
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.File.ID, Start: start, End: c.Off}
}
