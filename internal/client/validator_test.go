package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedReceiptName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"jpg", "ticket.jpg", true},
		{"jpeg", "ticket.jpeg", true},
		{"png", "ticket.png", true},
		{"uppercase extension", "TICKET.PNG", true},
		{"mixed case", "Ticket.JpEg", true},
		{"several dots", "note.de.frais.jpg", true},
		{"pdf", "facture.pdf", false},
		{"gif", "anim.gif", false},
		{"no extension", "ticket", false},
		{"trailing dot", "ticket.", false},
		{"empty", "", false},
		{"extension only", ".png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedReceiptName(tt.fileName))
		})
	}
}
