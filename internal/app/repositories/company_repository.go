package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// CompanyRepository handles company visit records, display only.
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListRecent lists the most recent company visits, capped at limit.
func (r *CompanyRepository) ListRecent(ctx context.Context, limit uint64) ([]*models.Company, error) {
	sql, args, err := r.sb.Select(
		"id", "company_name", "visit_date", "position", "package", "description").
		From("companies").
		OrderBy("visit_date DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list companies SQL")
		return nil, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list companies query")
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.VisitDate, &c.Position, &c.Package, &c.Description); err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, &c)
	}

	return companies, rows.Err()
}
