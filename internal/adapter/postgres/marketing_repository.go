package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prose-marketing/internal/core/domain"
)

// MarketingRepository implements port.MarketingRepository using pgxpool
// for PostgreSQL. Every write is a standalone statement; the concurrent
// channel launches of one campaign deliberately do not share a
// transaction.
type MarketingRepository struct {
	pool *pgxpool.Pool
}

// NewMarketingRepository returns a new repository instance.
func NewMarketingRepository(pool *pgxpool.Pool) *MarketingRepository {
	return &MarketingRepository{pool: pool}
}

// CreateCampaign inserts a campaign with a generated id and timestamps.
func (r *MarketingRepository) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `INSERT INTO marketing_campaigns
    (id, project_id, name, campaign_type, start_date, end_date, budget_cents, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.ProjectID, c.Name, c.Type, c.StartDate, c.EndDate, c.BudgetCents, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *MarketingRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, project_id, name, campaign_type, start_date, end_date, budget_cents, status, created_at, updated_at
FROM marketing_campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.ProjectID, &c.Name, &c.Type, &c.StartDate, &c.EndDate, &c.BudgetCents, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaignStatus sets the lifecycle status and returns the
// updated campaign, or nil when the id is unknown.
func (r *MarketingRepository) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `UPDATE marketing_campaigns
SET status = $1, updated_at = now()
WHERE id = $2
RETURNING id, project_id, name, campaign_type, start_date, end_date, budget_cents, status, created_at, updated_at`, status, id).
		Scan(&c.ID, &c.ProjectID, &c.Name, &c.Type, &c.StartDate, &c.EndDate, &c.BudgetCents, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateChannelRecord inserts the durable state of one launched channel
// with a generated id.
func (r *MarketingRepository) CreateChannelRecord(ctx context.Context, rec domain.ChannelRecord) (*domain.ChannelRecord, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx, `INSERT INTO marketing_channels
    (id, campaign_id, channel, budget_cents, spend_cents, impressions, clicks, conversions, revenue_cents, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		rec.ID, rec.CampaignID, rec.Channel, rec.BudgetCents, rec.SpendCents, rec.Impressions, rec.Clicks, rec.Conversions, rec.RevenueCents, rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListChannelRecords returns a campaign's channel records in insertion order.
func (r *MarketingRepository) ListChannelRecords(ctx context.Context, campaignID string) ([]domain.ChannelRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, channel, budget_cents, spend_cents, impressions, clicks, conversions, revenue_cents, created_at
FROM marketing_channels WHERE campaign_id = $1 ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChannelRecord, error) {
		var rec domain.ChannelRecord
		err := row.Scan(&rec.ID, &rec.CampaignID, &rec.Channel, &rec.BudgetCents, &rec.SpendCents,
			&rec.Impressions, &rec.Clicks, &rec.Conversions, &rec.RevenueCents, &rec.CreatedAt)
		return rec, err
	})
}

// ListEmailCampaigns returns the email sends recorded for a campaign.
func (r *MarketingRepository) ListEmailCampaigns(ctx context.Context, campaignID string) ([]domain.EmailCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, email_type, subject_line, send_date, recipients_count, opens_count, clicks_count, conversions_count, status
FROM email_campaigns WHERE campaign_id = $1 ORDER BY send_date, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EmailCampaign, error) {
		var e domain.EmailCampaign
		err := row.Scan(&e.ID, &e.CampaignID, &e.EmailType, &e.Subject, &e.SendDate,
			&e.Recipients, &e.Opens, &e.Clicks, &e.Conversions, &e.Status)
		return e, err
	})
}

// ListSocialPosts returns the organic posts recorded for a campaign.
// Engagement is stored as jsonb and decoded per row; a malformed
// engagement document counts as empty rather than failing the read.
func (r *MarketingRepository) ListSocialPosts(ctx context.Context, campaignID string) ([]domain.SocialPost, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, platform, content, status, engagement, created_at
FROM social_posts WHERE campaign_id = $1 ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	type rawPost struct {
		post          domain.SocialPost
		engagementRaw []byte
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawPost, error) {
		var rp rawPost
		err := row.Scan(&rp.post.ID, &rp.post.CampaignID, &rp.post.Platform, &rp.post.Content,
			&rp.post.Status, &rp.engagementRaw, &rp.post.CreatedAt)
		return rp, err
	})
	if err != nil {
		return nil, err
	}

	posts := make([]domain.SocialPost, 0, len(raw))
	for _, rp := range raw {
		if len(rp.engagementRaw) > 0 {
			_ = json.Unmarshal(rp.engagementRaw, &rp.post.Engagement)
		}
		posts = append(posts, rp.post)
	}
	return posts, nil
}

// CreateSale appends a sale record with a generated id.
func (r *MarketingRepository) CreateSale(ctx context.Context, s domain.Sale) (*domain.Sale, error) {
	s.ID = uuid.NewString()

	_, err := r.pool.Exec(ctx, `INSERT INTO sales
    (id, project_id, platform, sale_date, format, units_sold, revenue_cents, royalty_cents, source)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.ProjectID, s.Platform, s.SaleDate, s.Format, s.Units, s.RevenueCents, s.RoyaltyCents, s.Source)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ProjectSalesTotals returns the all-time sale count and revenue for a project.
func (r *MarketingRepository) ProjectSalesTotals(ctx context.Context, projectID string) (int64, int64, error) {
	var count, revenueCents int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0), COALESCE(sum(revenue_cents),0)
FROM sales WHERE project_id = $1`, projectID).Scan(&count, &revenueCents)
	if err != nil {
		return 0, 0, err
	}
	return count, revenueCents, nil
}

// ActiveCampaignTotals returns the number of active campaigns for a
// project and their combined budget.
func (r *MarketingRepository) ActiveCampaignTotals(ctx context.Context, projectID string) (int64, int64, error) {
	var count, spendCents int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0), COALESCE(sum(budget_cents),0)
FROM marketing_campaigns WHERE project_id = $1 AND status = $2`, projectID, domain.StatusActive).Scan(&count, &spendCents)
	if err != nil {
		return 0, 0, err
	}
	return count, spendCents, nil
}
