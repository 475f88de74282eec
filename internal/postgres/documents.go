package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/rgarza/folio/internal/builder"
	"github.com/rgarza/folio/internal/core"
)

// Checklists live in a text column rather than jsonb so the stored document
// reads back byte-for-byte; jsonb would normalize key order and whitespace.

func (a *Adapter) GetChecklist(userID string) ([]byte, error) {
	ctx := context.Background()

	var doc []byte
	err := a.pool.QueryRow(ctx, `SELECT doc FROM public.checklists WHERE user_id = $1`, userID).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrChecklistNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (a *Adapter) SaveChecklist(userID string, doc []byte) error {
	ctx := context.Background()

	query := `INSERT INTO public.checklists (user_id, doc, updated_at)
	          VALUES ($1, $2, now())
	          ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`

	_, err := a.pool.Exec(ctx, query, userID, doc)
	return err
}

func (a *Adapter) ListPortfolios(ownerID string) ([]*core.PortfolioMeta, error) {
	ctx := context.Background()
	query := `SELECT id, name, template, created_at, updated_at
	          FROM public.portfolios WHERE owner_id = $1 ORDER BY updated_at DESC`

	rows, err := a.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metas := []*core.PortfolioMeta{}
	for rows.Next() {
		m := &core.PortfolioMeta{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Template, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return metas, nil
}

func (a *Adapter) GetPortfolio(ownerID, id string) (*core.Portfolio, error) {
	ctx := context.Background()
	query := `SELECT id, owner_id, name, template, components, created_at, updated_at
	          FROM public.portfolios WHERE owner_id = $1 AND id = $2`

	p := &core.Portfolio{}
	var components []byte
	err := a.pool.QueryRow(ctx, query, ownerID, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Template, &components, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrPortfolioNotFound
		}
		return nil, err
	}

	p.Components = []builder.Component{}
	if len(components) > 0 {
		if err := json.Unmarshal(components, &p.Components); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (a *Adapter) SavePortfolio(p *core.Portfolio) error {
	ctx := context.Background()

	components, err := json.Marshal(p.Components)
	if err != nil {
		return err
	}

	query := `INSERT INTO public.portfolios (id, owner_id, name, template, components, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id, owner_id) DO UPDATE
	          SET name = EXCLUDED.name, template = EXCLUDED.template,
	              components = EXCLUDED.components, updated_at = EXCLUDED.updated_at`

	_, err = a.pool.Exec(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Template, components, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (a *Adapter) DeletePortfolio(ownerID, id string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.portfolios WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPortfolioNotFound
	}
	return nil
}
