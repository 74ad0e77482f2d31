package main

import (
	"log"
	"strings"

	"golang.design/x/clipboard"
)

// Clipboard copies text to the system clipboard when one is available.
type Clipboard struct {
	ok bool
}

func NewClipboard() *Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
		return &Clipboard{}
	}
	return &Clipboard{ok: true}
}

func (c *Clipboard) Copy(lines []string) bool {
	if c == nil || !c.ok {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(lines, "\n")))
	return true
}
