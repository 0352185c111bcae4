package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/opticode/backend/internal/models"
)

// CaptureLead stores a lead. School and address become SQL NULL when blank
// rather than empty strings.
func CaptureLead(conn *gorm.DB, name, phone, school, address string) (*models.Lead, error) {
	lead := models.Lead{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		School:  optional(school),
		Address: optional(address),
	}
	if err := conn.Create(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListLeads returns one page of leads, newest first, plus the total count.
func ListLeads(conn *gorm.DB, limit, offset int) ([]models.Lead, int64, error) {
	limit = ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	var total int64
	if err := conn.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Lead
	if err := conn.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
