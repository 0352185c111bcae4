package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/opticode/backend/internal/models"
)

var codeRE = regexp.MustCompile(`^OPT-[A-Z0-9]{4}$`)

// TestGenerateTicketCode_Format verifies that generated codes match the
// OPT-XXXX format (uppercase alphanumeric, exactly 4 characters).
func TestGenerateTicketCode_Format(t *testing.T) {
	for i := 0; i < 500; i++ {
		code := GenerateTicketCode()
		if !codeRE.MatchString(code) {
			t.Fatalf("code %q does not match OPT-[A-Z0-9]{4}", code)
		}
		for _, r := range strings.TrimPrefix(code, "OPT-") {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
	}
}

// TestAllocateTicketCode_RetriesOnCollision stubs the generator to return a
// taken code first and checks that allocation keeps drawing until it finds
// a free one.
func TestAllocateTicketCode_RetriesOnCollision(t *testing.T) {
	gdb := openTestDB(t)
	seed := models.Ticket{
		Code: "OPT-AAAA", Name: "A", Email: "a@b.co",
		ProjectType: "Web", Message: "hi", Status: models.StatusPending,
	}
	if err := gdb.Create(&seed).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}

	orig := generateCode
	t.Cleanup(func() { generateCode = orig })

	calls := 0
	generateCode = func() string {
		calls++
		if calls == 1 {
			return "OPT-AAAA" // collision
		}
		return "OPT-BBBB"
	}

	code, err := AllocateTicketCode(gdb)
	if err != nil {
		t.Fatalf("AllocateTicketCode: %v", err)
	}
	if code != "OPT-BBBB" {
		t.Errorf("expected OPT-BBBB after collision, got %q", code)
	}
	if calls != 2 {
		t.Errorf("expected 2 generator calls, got %d", calls)
	}
}
