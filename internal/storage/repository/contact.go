package repository

import (
	"context"
	"fmt"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

// CreateContact saves a contact form message and returns the stored row.
func (s *Storage) CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	const op = "storage.CreateContact"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contacts (company_name, email, message, type)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, company_name, email, message, type, created_at`
	var result models.Contact
	if err := s.DB.QueryRowContext(ctx, query,
		contact.CompanyName, contact.Email, contact.Message, contact.Type).Scan(
		&result.ID, &result.CompanyName, &result.Email, &result.Message,
		&result.Type, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListContacts returns all contact messages, newest first.
func (s *Storage) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	const op = "storage.ListContacts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, company_name, email, message, type, created_at
			  FROM contacts
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Contact
	for rows.Next() {
		var item models.Contact
		if err := rows.Scan(&item.ID, &item.CompanyName, &item.Email,
			&item.Message, &item.Type, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveContact deletes a contact message by ID and returns the number of
// deleted rows.
func (s *Storage) RemoveContact(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM contacts WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
