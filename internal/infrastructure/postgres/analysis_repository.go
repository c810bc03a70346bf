package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/analysis"
)

// AnalysisRepository implements the analysis.Repository interface for
// PostgreSQL. Insights, warnings, recommendations, and the raw numeric bag
// are stored as JSONB columns.
type AnalysisRepository struct {
	db *DB
}

// NewAnalysisRepository creates a new PostgreSQL analysis repository
func NewAnalysisRepository(db *DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create persists a new analysis result
func (r *AnalysisRepository) Create(ctx context.Context, params analysis.CreateParams) (*analysis.Result, error) {
	insights, err := json.Marshal(params.Insights)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insights: %w", err)
	}
	warnings, err := json.Marshal(params.Warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal warnings: %w", err)
	}
	recommendations, err := json.Marshal(params.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	rawData, err := json.Marshal(params.RawData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw data: %w", err)
	}

	query := `
		INSERT INTO analysis_results (id, user_id, snapshot_date, insights, warnings, recommendations, raw_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, snapshot_date, created_at
	`

	result := &analysis.Result{
		Insights:        params.Insights,
		Warnings:        params.Warnings,
		Recommendations: params.Recommendations,
		RawData:         params.RawData,
	}
	err = r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.SnapshotDate, insights, warnings, recommendations, rawData,
	).Scan(&result.ID, &result.UserID, &result.SnapshotDate, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis result: %w", err)
	}

	return result, nil
}

// GetLatestBefore retrieves the most recent result with snapshot_date
// strictly before the given date, or (nil, nil) when none exists
func (r *AnalysisRepository) GetLatestBefore(ctx context.Context, userID int64, before time.Time) (*analysis.Result, error) {
	query := `
		SELECT id, user_id, snapshot_date, insights, warnings, recommendations, raw_data, created_at
		FROM analysis_results
		WHERE user_id = $1 AND snapshot_date < $2
		ORDER BY snapshot_date DESC, created_at DESC
		LIMIT 1
	`
	return r.scanResult(r.db.QueryRowContext(ctx, query, userID, before))
}

// GetLatest retrieves the user's most recent result regardless of date,
// or (nil, nil) when none exists
func (r *AnalysisRepository) GetLatest(ctx context.Context, userID int64) (*analysis.Result, error) {
	query := `
		SELECT id, user_id, snapshot_date, insights, warnings, recommendations, raw_data, created_at
		FROM analysis_results
		WHERE user_id = $1
		ORDER BY snapshot_date DESC, created_at DESC
		LIMIT 1
	`
	return r.scanResult(r.db.QueryRowContext(ctx, query, userID))
}

func (r *AnalysisRepository) scanResult(row scanner) (*analysis.Result, error) {
	var result analysis.Result
	var insights, warnings, recommendations, rawData []byte
	err := row.Scan(
		&result.ID, &result.UserID, &result.SnapshotDate,
		&insights, &warnings, &recommendations, &rawData, &result.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest analysis result: %w", err)
	}

	if err := json.Unmarshal(insights, &result.Insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insights: %w", err)
	}
	if err := json.Unmarshal(warnings, &result.Warnings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal warnings: %w", err)
	}
	if err := json.Unmarshal(recommendations, &result.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	if err := json.Unmarshal(rawData, &result.RawData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw data: %w", err)
	}

	return &result, nil
}
