package gormhistory

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"retailsim/internal/app/ports"
)

// ActivityRecord is the persisted form of one action feed line.
type ActivityRecord struct {
	ID         uint      `gorm:"primaryKey"`
	AgentName  string    `gorm:"size:128;index"`
	Action     string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"index"`
}

func (ActivityRecord) TableName() string { return "activity_records" }

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) (Repo, error) {
	if err := db.AutoMigrate(&ActivityRecord{}); err != nil {
		return Repo{}, fmt.Errorf("migrate activity_records: %w", err)
	}
	return Repo{db: db}, nil
}

func (r Repo) Append(ctx context.Context, records []ports.ActivityRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]ActivityRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, ActivityRecord{
			AgentName:  rec.AgentName,
			Action:     rec.Action,
			OccurredAt: rec.OccurredAt,
		})
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("append activity records: %w", err)
	}
	return nil
}

func (r Repo) ListRecent(ctx context.Context, limit int) ([]ports.ActivityRecord, error) {
	rows := []ActivityRecord{}
	query := r.db.WithContext(ctx).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "occurred_at"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		},
	})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list activity records: %w", err)
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.ActivityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.ActivityRecord{
			AgentName:  row.AgentName,
			Action:     row.Action,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}
