package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// unlocked_days is read back in text form so IntArray can scan it.
const assignmentColumns = `id, countdown_id, receiver_id, status, unlocked_on, unlocked_days::text AS unlocked_days,
created_at, updated_at`

const sqlInsertAssignment = `
INSERT INTO assignments (countdown_id, receiver_id)
VALUES ($1, $2)
ON CONFLICT (countdown_id, receiver_id) DO NOTHING
RETURNING ` + assignmentColumns

// UpsertAssignment ensures exactly one assignment exists for the pair. The
// boolean reports whether this call created it.
func (s *Store) UpsertAssignment(ctx context.Context, countdownID, receiverID uuid.UUID) (Assignment, bool, error) {
	var assignment Assignment
	err := s.db.GetContext(ctx, &assignment, sqlInsertAssignment, countdownID, receiverID)
	if err == nil {
		return assignment, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to upsert assignment", err)
		return Assignment{}, false, fmt.Errorf("failed to upsert assignment: %w", err)
	}

	assignment, err = s.GetAssignmentByCountdownAndReceiver(ctx, countdownID, receiverID)
	if err != nil {
		return Assignment{}, false, err
	}
	return assignment, false, nil
}

const sqlGetAssignmentByID = `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE id = $1`

func (s *Store) GetAssignmentByID(ctx context.Context, assignmentID uuid.UUID) (Assignment, error) {
	var assignment Assignment
	err := s.db.GetContext(ctx, &assignment, sqlGetAssignmentByID, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

const sqlGetAssignmentByCountdownAndReceiver = `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE countdown_id = $1 AND receiver_id = $2`

func (s *Store) GetAssignmentByCountdownAndReceiver(ctx context.Context, countdownID, receiverID uuid.UUID) (Assignment, error) {
	var assignment Assignment
	err := s.db.GetContext(ctx, &assignment, sqlGetAssignmentByCountdownAndReceiver, countdownID, receiverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

const sqlGetAssignmentsByCountdown = `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE countdown_id = $1
ORDER BY created_at ASC`

func (s *Store) GetAssignmentsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]Assignment, error) {
	assignments := []Assignment{}
	err := s.db.SelectContext(ctx, &assignments, sqlGetAssignmentsByCountdown, countdownID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by countdown: %w", err)
	}
	return assignments, nil
}

const sqlGetAssignmentsByReceiver = `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE receiver_id = $1
ORDER BY created_at DESC`

func (s *Store) GetAssignmentsByReceiver(ctx context.Context, receiverID uuid.UUID) ([]Assignment, error) {
	assignments := []Assignment{}
	err := s.db.SelectContext(ctx, &assignments, sqlGetAssignmentsByReceiver, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by receiver: %w", err)
	}
	return assignments, nil
}

// Set-union in a single statement so concurrent unlocks of different days converge.
const sqlAddUnlockedDay = `
UPDATE assignments
SET unlocked_days = ARRAY(SELECT DISTINCT d FROM unnest(array_append(unlocked_days, $2::integer)) AS d ORDER BY d),
    status = 'unlocked',
    unlocked_on = COALESCE(unlocked_on, CURRENT_TIMESTAMP),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + assignmentColumns

// AddUnlockedDay records QR proof for day. unlocked_days never shrinks.
func (s *Store) AddUnlockedDay(ctx context.Context, assignmentID uuid.UUID, day int) (Assignment, error) {
	var assignment Assignment
	err := s.db.GetContext(ctx, &assignment, sqlAddUnlockedDay, assignmentID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assignment{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to add unlocked day", err)
		return Assignment{}, fmt.Errorf("failed to add unlocked day: %w", err)
	}
	return assignment, nil
}
