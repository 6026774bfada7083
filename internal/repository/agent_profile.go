package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/missionctl/missionctl/internal/domain"
)

var profileColumns = []string{
	"agent_id", "name", "description", "config", "created_at", "updated_at",
}

// AgentProfileRepository handles database operations for agent profiles.
// Profiles are maintained elsewhere; this service only reads them.
type AgentProfileRepository struct {
	pool *pgxpool.Pool
}

// NewAgentProfileRepository creates a new AgentProfileRepository.
func NewAgentProfileRepository(pool *pgxpool.Pool) *AgentProfileRepository {
	return &AgentProfileRepository{pool: pool}
}

func scanProfile(row pgx.Row) (*domain.AgentProfile, error) {
	var profile domain.AgentProfile
	err := row.Scan(
		&profile.AgentID,
		&profile.Name,
		&profile.Description,
		&profile.Config,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan agent profile: %w", err)
	}
	return &profile, nil
}

// List retrieves all agent profiles ordered by name.
func (r *AgentProfileRepository) List(ctx context.Context) ([]*domain.AgentProfile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("agent_profiles").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for agent profiles: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query agent profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.AgentProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return profiles, nil
}

// GetByID retrieves an agent profile by its externally assigned agent_id.
func (r *AgentProfileRepository) GetByID(ctx context.Context, agentID string) (*domain.AgentProfile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("agent_profiles").
		Where(sq.Eq{"agent_id": agentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for agent profile: %w", err)
	}

	return scanProfile(r.pool.QueryRow(ctx, query, args...))
}
