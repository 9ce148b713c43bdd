package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 200
)

type AuditLogFilter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Normalize aplica os limites de paginação.
func (f AuditLogFilter) Normalize() AuditLogFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxAuditLimit {
		f.Limit = DefaultAuditLimit
	}
	return f
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) List(
	ctx context.Context,
	filter AuditLogFilter,
) (*AuditLogPage, error) {

	filter = filter.Normalize()
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", filter.To.Add(24*time.Hour))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	logs := make([]models.AuditLog, 0, filter.Limit)
	if err := q.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return &AuditLogPage{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Logs:  logs,
	}, nil
}
