package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/opticode/backend/internal/models"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidSender      = errors.New("invalid sender")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Pagination bounds for the public list endpoints.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ClampLimit applies the default and the hard cap.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// ValidStatus reports whether s is one of the five ticket statuses
// (case-sensitive).
func ValidStatus(s string) bool {
	for _, v := range models.ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CreateQuote allocates a unique ticket code and stores the ticket together
// with the customer's opening message in one transaction, so a failed
// message insert never leaves a ticket without its thread.
func CreateQuote(conn *gorm.DB, name, email, projectType, message string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := conn.Transaction(func(tx *gorm.DB) error {
		code, err := AllocateTicketCode(tx)
		if err != nil {
			return err
		}
		ticket = models.Ticket{
			Code:        code,
			Name:        strings.TrimSpace(name),
			Email:       strings.ToLower(strings.TrimSpace(email)),
			ProjectType: strings.TrimSpace(projectType),
			Message:     strings.TrimSpace(message),
			Status:      models.StatusPending,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		opening := models.Message{
			TicketID: ticket.ID,
			Sender:   models.SenderUser,
			Body:     ticket.Message,
		}
		return tx.Create(&opening).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// TicketByCode looks a ticket up by its public code, case-insensitively.
func TicketByCode(conn *gorm.DB, code string) (*models.Ticket, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	var t models.Ticket
	if err := conn.Where("code = ?", code).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// TicketMessages returns a ticket's conversation oldest-first.
func TicketMessages(conn *gorm.DB, ticketID uint) ([]models.Message, error) {
	var msgs []models.Message
	if err := conn.Where("ticket_id = ?", ticketID).
		Order("created_at asc, id asc").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// AppendMessage adds one entry to a ticket's conversation. The sender tag is
// normalized to lowercase and must be "user" or "admin"; the body is assumed
// validated non-empty by the caller.
func AppendMessage(conn *gorm.DB, ticketID uint, sender, body string) (*models.Message, error) {
	sender = strings.ToLower(strings.TrimSpace(sender))
	if sender != models.SenderUser && sender != models.SenderAdmin {
		return nil, ErrInvalidSender
	}
	msg := models.Message{
		TicketID: ticketID,
		Sender:   sender,
		Body:     strings.TrimSpace(body),
	}
	if err := conn.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateTicketStatus moves a ticket to any of the five valid statuses.
func UpdateTicketStatus(conn *gorm.DB, code, status string) (*models.Ticket, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	t, err := TicketByCode(conn, code)
	if err != nil {
		return nil, err
	}
	if err := conn.Model(t).Update("status", status).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListTickets returns one page of tickets, newest first, plus the total for
// the active filter. Limits are clamped to MaxListLimit.
func ListTickets(conn *gorm.DB, status string, limit, offset int) ([]models.Ticket, int64, error) {
	limit = ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	q := conn.Model(&models.Ticket{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Ticket
	if err := q.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
