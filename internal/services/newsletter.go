package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/opticode/backend/internal/models"
)

// SubscribeResult distinguishes the three subscribe outcomes so the handler
// can word its response; all three are success to the caller.
type SubscribeResult int

const (
	Subscribed SubscribeResult = iota
	AlreadySubscribed
	Resubscribed
)

// Subscribe enrolls an email, idempotently. An active subscriber is left
// untouched; an inactive one is reactivated with its unsubscribe timestamp
// cleared. Email uniqueness is backed by the unique index.
func Subscribe(conn *gorm.DB, email string) (SubscribeResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var sub models.Subscriber
	err := conn.Where("email = ?", email).First(&sub).Error
	switch {
	case err == nil:
		if sub.IsActive {
			return AlreadySubscribed, nil
		}
		updates := map[string]any{"is_active": true, "unsubscribed_at": nil}
		if err := conn.Model(&sub).Updates(updates).Error; err != nil {
			return 0, err
		}
		return Resubscribed, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.Subscriber{Email: email, IsActive: true}
		if err := conn.Create(&sub).Error; err != nil {
			return 0, err
		}
		return Subscribed, nil
	default:
		return 0, err
	}
}

// Unsubscribe deactivates an existing subscriber and stamps the time.
// Calling it on an already-inactive email is not an error; the stamp is
// simply refreshed. Unknown emails return ErrSubscriberNotFound.
func Unsubscribe(conn *gorm.DB, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	var sub models.Subscriber
	if err := conn.Where("email = ?", email).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubscriberNotFound
		}
		return err
	}
	now := time.Now()
	return conn.Model(&sub).Updates(map[string]any{"is_active": false, "unsubscribed_at": now}).Error
}

// ListSubscribers returns one page of subscribers, newest first. filter is
// "", "active" or "inactive".
func ListSubscribers(conn *gorm.DB, filter string, limit, offset int) ([]models.Subscriber, int64, error) {
	limit = ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	q := conn.Model(&models.Subscriber{})
	switch filter {
	case "active":
		q = q.Where("is_active = ?", true)
	case "inactive":
		q = q.Where("is_active = ?", false)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Subscriber
	if err := q.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
