package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a demo publishing project with campaigns, channel
// tallies, email sends, social posts and sales so the analytics side
// has something to chew on out of the box.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	projectID := "demo-project"

	channels := []string{"amazon_ads", "facebook_ads", "bookbub", "email", "social_organic"}
	types := []string{"pre_launch", "launch", "ongoing"}

	for i, campaignType := range types {
		campaignID := fmt.Sprintf("demo-campaign-%d", i+1)
		start := time.Now().AddDate(0, 0, -30+10*i)
		end := start.AddDate(0, 0, 30)
		status := "active"
		if i == 0 {
			status = "completed"
		}
		_, err := db.Exec(ctx, `INSERT INTO marketing_campaigns
    (id, project_id, name, campaign_type, start_date, end_date, budget_cents, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, projectID, fmt.Sprintf("%s Campaign - %s", campaignType, start.Format(time.RFC3339)),
			campaignType, start, end, int64(100_000*(i+1)), status)
		if err != nil {
			return err
		}

		for _, channel := range channels {
			budget := int64(10_000 + r.Intn(40_000))
			spend := budget * int64(r.Intn(90)) / 100
			impressions := int64(1_000 + r.Intn(50_000))
			clicks := impressions / int64(20+r.Intn(80))
			conversions := clicks / int64(5+r.Intn(20))
			revenue := conversions * int64(300+r.Intn(700))
			_, err = db.Exec(ctx, `INSERT INTO marketing_channels
    (id, campaign_id, channel, budget_cents, spend_cents, impressions, clicks, conversions, revenue_cents, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, channel, budget, spend, impressions, clicks, conversions, revenue)
			if err != nil {
				return err
			}
		}

		for j, emailType := range []string{"welcome", "nurture", "launch"} {
			recipients := int64(500 + r.Intn(4_500))
			opens := recipients * int64(15+r.Intn(30)) / 100
			clicks := opens * int64(5+r.Intn(25)) / 100
			_, err = db.Exec(ctx, `INSERT INTO email_campaigns
    (id, campaign_id, email_type, subject_line, send_date, recipients_count, opens_count, clicks_count, conversions_count, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, emailType, fmt.Sprintf("Reader update #%d", j+1),
				start.AddDate(0, 0, 3*j), recipients, opens, clicks, clicks/4, "sent")
			if err != nil {
				return err
			}
		}

		for _, platform := range []string{"twitter", "facebook", "instagram"} {
			engagement, _ := json.Marshal(map[string]int64{
				"views":       int64(200 + r.Intn(5_000)),
				"likes":       int64(r.Intn(300)),
				"comments":    int64(r.Intn(50)),
				"shares":      int64(r.Intn(40)),
				"clicks":      int64(r.Intn(150)),
				"conversions": int64(r.Intn(10)),
			})
			_, err = db.Exec(ctx, `INSERT INTO social_posts
    (id, campaign_id, platform, content, status, engagement, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, platform,
				"It's launch week! Grab your copy today.", "posted", engagement)
			if err != nil {
				return err
			}
		}
	}

	platforms := []string{"amazon", "apple", "kobo", "direct"}
	formats := []string{"ebook", "print", "audiobook"}
	sources := []string{"organic", "ad", "promo", "referral"}
	for i := 0; i < 200; i++ {
		revenue := int64(299 + r.Intn(1_500))
		_, err := db.Exec(ctx, `INSERT INTO sales
    (id, project_id, platform, sale_date, format, units_sold, revenue_cents, royalty_cents, source)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
			uuid.NewString(), projectID, platforms[r.Intn(len(platforms))],
			time.Now().AddDate(0, 0, -r.Intn(60)), formats[r.Intn(len(formats))],
			1, revenue, revenue*70/100, sources[r.Intn(len(sources))])
		if err != nil {
			return err
		}
	}
	return nil
}
