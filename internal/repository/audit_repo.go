// Package repository persists audit history records.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// ErrAuditNotFound is returned when an audit record id does not exist.
var ErrAuditNotFound = errors.New("audit record not found")

// AuditRepository handles audit history database operations.
type AuditRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *sql.DB, logger *zap.Logger) *AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new audit record and fills in its id. Pass a
// transaction when the insert must commit together with other writes;
// nil executes directly against the store.
func (r *AuditRepository) Create(tx *sql.Tx, record *entity.AuditRecord) error {
	query := `
		INSERT INTO audits (
			client_name, location, tia942_tier, tia942_score,
			uptime_tier, uptime_score, report_path
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var result sql.Result
	var err error

	if tx != nil {
		result, err = tx.Exec(query,
			record.ClientName,
			record.Location,
			record.TIA942Tier,
			record.TIA942,
			record.UptimeTier,
			record.Uptime,
			record.ReportPath,
		)
	} else {
		result, err = r.db.Exec(query,
			record.ClientName,
			record.Location,
			record.TIA942Tier,
			record.TIA942,
			record.UptimeTier,
			record.Uptime,
			record.ReportPath,
		)
	}
	if err != nil {
		r.logger.Error("Failed to create audit record", zap.Error(err))
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

// GetByID retrieves one audit record.
func (r *AuditRepository) GetByID(id int64) (*entity.AuditRecord, error) {
	query := `
		SELECT id, client_name, location, tia942_tier, tia942_score,
			uptime_tier, uptime_score, report_path, created_at
		FROM audits
		WHERE id = ?
	`

	var record entity.AuditRecord
	err := r.db.QueryRow(query, id).Scan(
		&record.ID,
		&record.ClientName,
		&record.Location,
		&record.TIA942Tier,
		&record.TIA942,
		&record.UptimeTier,
		&record.Uptime,
		&record.ReportPath,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrAuditNotFound, id)
	}
	if err != nil {
		r.logger.Error("Failed to get audit record", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get audit record: %w", err)
	}

	return &record, nil
}

// List retrieves audit records newest first, capped at limit.
func (r *AuditRepository) List(limit int) ([]*entity.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, client_name, location, tia942_tier, tia942_score,
			uptime_tier, uptime_score, report_path, created_at
		FROM audits
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		r.logger.Error("Failed to list audit records", zap.Error(err))
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	var records []*entity.AuditRecord
	for rows.Next() {
		var record entity.AuditRecord
		err := rows.Scan(
			&record.ID,
			&record.ClientName,
			&record.Location,
			&record.TIA942Tier,
			&record.TIA942,
			&record.UptimeTier,
			&record.Uptime,
			&record.ReportPath,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// UpdateReportPath records the generated report location after the fact.
// Pass a transaction to commit the update together with the record it
// annotates; nil executes directly against the store.
func (r *AuditRepository) UpdateReportPath(tx *sql.Tx, id int64, reportPath string) error {
	query := "UPDATE audits SET report_path = ? WHERE id = ?"

	var result sql.Result
	var err error

	if tx != nil {
		result, err = tx.Exec(query, reportPath, id)
	} else {
		result, err = r.db.Exec(query, reportPath, id)
	}
	if err != nil {
		r.logger.Error("Failed to update report path", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update report path: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrAuditNotFound, id)
	}
	return nil
}
