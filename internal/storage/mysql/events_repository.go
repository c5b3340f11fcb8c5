package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusboard/server/internal/domain/events"
)

var _ events.Repository = (*EventRepository)(nil)

func (r *EventRepository) List(ctx context.Context) ([]events.Summary, error) {
	items := []events.Summary{}
	err := r.db.SelectContext(ctx, &items, `
SELECT e.eid, e.event_name, h.org_name, e.date, e.start_time, e.end_time, e.price
  FROM event e
  JOIN host h ON h.eid = e.eid
 ORDER BY e.event_name`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) ListByCreator(ctx context.Context, email string) ([]events.Summary, error) {
	items := []events.Summary{}
	err := r.db.SelectContext(ctx, &items, `
SELECT e.eid, e.event_name, h.org_name, e.date, e.start_time, e.end_time, e.price
  FROM event e
  JOIN host h ON h.eid = e.eid
 WHERE e.created_by = ?
 ORDER BY e.date, e.start_time, e.event_name`,
		email)
	if err != nil {
		return nil, fmt.Errorf("list events by creator: %w", err)
	}
	return items, nil
}

func (r *EventRepository) GetDetail(ctx context.Context, id int64) (*events.Detail, error) {
	var detail events.Detail
	// Creator is LEFT JOINed: the account may have been removed after
	// the event was created.
	err := r.db.GetContext(ctx, &detail, `
SELECT e.eid, e.event_name, h.org_name, e.room_number, e.date, e.start_time,
       e.end_time, e.description, e.price,
       v.street, v.city, v.zip, z.state,
       u.name AS creator_name
  FROM event e
  JOIN host h ON h.eid = e.eid
  JOIN organization o ON o.org_name = h.org_name
  JOIN venue v ON v.vid = e.vid
  JOIN zip_codes z ON z.zip = v.zip
  LEFT JOIN users u ON u.user_email = e.created_by
 WHERE e.eid = ?`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return &detail, nil
}

func (r *EventRepository) GetCreator(ctx context.Context, id int64) (string, error) {
	var creator string
	err := r.db.GetContext(ctx, &creator, `SELECT created_by FROM event WHERE eid = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", events.ErrNotFound
		}
		return "", fmt.Errorf("get event creator %d: %w", id, err)
	}
	return creator, nil
}

// Create checks the referenced venue and organization with SELECTs, then
// inserts the event row and its host row. Everything runs in one
// transaction so the pair rises or falls together.
func (r *EventRepository) Create(ctx context.Context, params events.CreateParams) (int64, error) {
	var eventID int64
	err := WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var vid int64
		if err := tx.GetContext(ctx, &vid, `SELECT vid FROM venue WHERE vid = ?`, params.VenueID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return events.ErrVenueNotFound
			}
			return fmt.Errorf("check venue: %w", err)
		}

		var orgName string
		if err := tx.GetContext(ctx, &orgName, `SELECT org_name FROM organization WHERE org_name = ?`, params.OrgName); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return events.ErrOrganizationNotFound
			}
			return fmt.Errorf("check organization: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
INSERT INTO event (vid, room_number, date, start_time, end_time, description, price, event_name, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			params.VenueID, params.RoomNumber, params.Date, params.StartTime, params.EndTime,
			params.Description, params.Price, params.Name, params.CreatedBy)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}

		eventID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("event id: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO host (eid, org_name) VALUES (?, ?)`, eventID, params.OrgName); err != nil {
			return fmt.Errorf("insert host: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return eventID, nil
}

// Delete removes the host link first, then the event, in one
// transaction.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM host WHERE eid = ?`, id); err != nil {
			return fmt.Errorf("delete host: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM event WHERE eid = ?`, id); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}
