package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

type policyRepo struct {
	db dbConn
}

func newPolicyRepo(db dbConn) contract.PolicyRepo {
	return &policyRepo{db: db}
}

func (r *policyRepo) Create(policy *entity.ReminderPolicy) error {
	days, subjects, err := marshalPolicyLists(policy)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO policies (recipient_id, recipient_type, reminder_days, subjects,
			notifications_enabled, timezone)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		policy.RecipientID,
		policy.RecipientType,
		days,
		subjects,
		policy.Enabled,
		policy.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	policy.ID = id
	return nil
}

func (r *policyRepo) GetByRecipientID(recipientID string) (*entity.ReminderPolicy, error) {
	query := `
		SELECT id, recipient_id, recipient_type, reminder_days, subjects,
			notifications_enabled, timezone, created_at, updated_at
		FROM policies
		WHERE recipient_id = ?
	`

	policy, err := scanPolicy(r.db.QueryRow(query, recipientID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	return policy, nil
}

func (r *policyRepo) Update(policy *entity.ReminderPolicy) error {
	days, subjects, err := marshalPolicyLists(policy)
	if err != nil {
		return err
	}

	query := `
		UPDATE policies SET
			reminder_days = ?,
			subjects = ?,
			notifications_enabled = ?,
			timezone = ?,
			updated_at = ?
		WHERE recipient_id = ?
	`

	_, err = r.db.Exec(query,
		days,
		subjects,
		policy.Enabled,
		policy.Timezone,
		time.Now(),
		policy.RecipientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update policy: %w", err)
	}

	return nil
}

func (r *policyRepo) Delete(recipientID string) error {
	if _, err := r.db.Exec(`DELETE FROM policies WHERE recipient_id = ?`, recipientID); err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	return nil
}

func (r *policyRepo) ListEnabled() ([]*entity.ReminderPolicy, error) {
	query := `
		SELECT id, recipient_id, recipient_type, reminder_days, subjects,
			notifications_enabled, timezone, created_at, updated_at
		FROM policies
		WHERE notifications_enabled = 1
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled policies: %w", err)
	}
	defer rows.Close()

	var policies []*entity.ReminderPolicy
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		policies = append(policies, policy)
	}

	return policies, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPolicy(row scanner) (*entity.ReminderPolicy, error) {
	policy := &entity.ReminderPolicy{}
	var days, subjects string

	err := row.Scan(
		&policy.ID,
		&policy.RecipientID,
		&policy.RecipientType,
		&days,
		&subjects,
		&policy.Enabled,
		&policy.Timezone,
		&policy.CreatedAt,
		&policy.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(days), &policy.ReminderDays); err != nil {
		return nil, fmt.Errorf("failed to decode reminder_days: %w", err)
	}
	if err := json.Unmarshal([]byte(subjects), &policy.Subjects); err != nil {
		return nil, fmt.Errorf("failed to decode subjects: %w", err)
	}

	return policy, nil
}

func marshalPolicyLists(policy *entity.ReminderPolicy) (days, subjects string, err error) {
	d, err := json.Marshal(policy.ReminderDays)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode reminder_days: %w", err)
	}
	s, err := json.Marshal(policy.Subjects)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode subjects: %w", err)
	}
	return string(d), string(s), nil
}
