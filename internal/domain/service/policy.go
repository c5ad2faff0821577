package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

type policyService struct {
	dm contract.DataManager
}

func newPolicy(dm contract.DataManager) *policyService {
	return &policyService{dm: dm}
}

// GetOrCreate fetches the recipient's policy, creating it with defaults on
// first interaction.
func (s *policyService) GetOrCreate(recipientID, recipientType string) (*entity.ReminderPolicy, error) {
	return getOrCreate(s.dm, recipientID, recipientType)
}

func getOrCreate(dm contract.DataManager, recipientID, recipientType string) (*entity.ReminderPolicy, error) {
	policy, err := dm.Policy().GetByRecipientID(recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check policy: %w", err)
	}

	if policy != nil {
		return policy, nil
	}

	policy = &entity.ReminderPolicy{
		RecipientID:   recipientID,
		RecipientType: recipientType,
		ReminderDays:  append([]int(nil), domain.DefaultReminderDays...),
		Enabled:       true,
		Timezone:      domain.DefaultTimezone,
	}

	if err := dm.Policy().Create(policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	return policy, nil
}

// SetReminderDays validates and stores a new threshold set. Validation lives
// here, at the preference-update boundary; the matcher assumes a validated
// non-empty positive set.
func (s *policyService) SetReminderDays(recipientID, recipientType string, days []int) (*entity.ReminderPolicy, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("reminder days cannot be empty")
	}
	seen := make(map[int]struct{}, len(days))
	clean := make([]int, 0, len(days))
	for _, d := range days {
		if d <= 0 {
			return nil, fmt.Errorf("reminder days must be positive, got %d", d)
		}
		if d > domain.MaxReminderDays {
			return nil, fmt.Errorf("reminder days cannot exceed %d, got %d", domain.MaxReminderDays, d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		clean = append(clean, d)
	}

	return s.update(recipientID, recipientType, func(p *entity.ReminderPolicy) {
		p.ReminderDays = clean
	})
}

// SetSubjects stores the recipient's subject filter; an empty list means all
// subjects.
func (s *policyService) SetSubjects(recipientID, recipientType string, subjects []string) (*entity.ReminderPolicy, error) {
	for _, tag := range subjects {
		if !domain.ValidSubject(tag) {
			return nil, fmt.Errorf("unknown subject %q", tag)
		}
	}

	return s.update(recipientID, recipientType, func(p *entity.ReminderPolicy) {
		p.Subjects = subjects
	})
}

// SetTimezone stores the recipient's display zone. Matching math never uses
// it; deadlines always count down in their own zone.
func (s *policyService) SetTimezone(recipientID, recipientType, zone string) (*entity.ReminderPolicy, error) {
	if _, err := time.LoadLocation(zone); err != nil || zone == "" {
		return nil, fmt.Errorf("unknown timezone %q", zone)
	}

	return s.update(recipientID, recipientType, func(p *entity.ReminderPolicy) {
		p.Timezone = zone
	})
}

func (s *policyService) SetEnabled(recipientID, recipientType string, enabled bool) (*entity.ReminderPolicy, error) {
	return s.update(recipientID, recipientType, func(p *entity.ReminderPolicy) {
		p.Enabled = enabled
	})
}

func (s *policyService) Delete(recipientID string) error {
	return s.dm.Policy().Delete(recipientID)
}

// update runs the read-modify-write inside a transaction so two slash
// commands for the same recipient cannot interleave.
func (s *policyService) update(recipientID, recipientType string, mutate func(*entity.ReminderPolicy)) (*entity.ReminderPolicy, error) {
	var policy *entity.ReminderPolicy

	err := s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		p, err := getOrCreate(dm, recipientID, recipientType)
		if err != nil {
			return err
		}

		mutate(p)

		if err := dm.Policy().Update(p); err != nil {
			return fmt.Errorf("failed to update policy: %w", err)
		}

		policy = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return policy, nil
}
