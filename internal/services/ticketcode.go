package services

import (
	"math/rand"

	"gorm.io/gorm"

	"github.com/opticode/backend/internal/models"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTicketCode returns a candidate code like OPT-7K2Q. Uniqueness is
// the caller's problem; AllocateTicketCode retries until an unused code
// comes up.
func GenerateTicketCode() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return "OPT-" + string(b)
}

// Swappable in tests to force collisions.
var generateCode = GenerateTicketCode

// AllocateTicketCode generates codes until one is free. The keyspace is
// 36^4; at expected volumes collisions stay rare and the loop terminates
// after a draw or two. No retry cap — exhausting the keyspace is an
// accepted non-concern here.
func AllocateTicketCode(tx *gorm.DB) (string, error) {
	for {
		code := generateCode()
		var n int64
		if err := tx.Model(&models.Ticket{}).Where("code = ?", code).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
}
