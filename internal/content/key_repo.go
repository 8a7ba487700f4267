package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mr-Gerald/graceful-path-web/ent"
	"github.com/Mr-Gerald/graceful-path-web/ent/apikey"
)

// keyRepo implements KeyRepo using the ent client.
type keyRepo struct {
	client *ent.Client
}

func (r *keyRepo) Add(ctx context.Context, label, secret string) (*APIKey, error) {
	if secret == "" {
		return nil, fmt.Errorf("add key: empty secret")
	}
	id := uuid.New().String()
	row, err := r.client.APIKey.Create().
		SetID(id).
		SetLabel(label).
		SetKeyValue(secret).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add key: %w", err)
	}
	return entKeyToKey(row), nil
}

func (r *keyRepo) List(ctx context.Context) ([]APIKey, error) {
	rows, err := r.client.APIKey.Query().
		Order(ent.Asc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys := make([]APIKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, *entKeyToKey(row))
	}
	return keys, nil
}

func (r *keyRepo) ActiveSecrets(ctx context.Context) ([]string, error) {
	rows, err := r.client.APIKey.Query().
		Where(apikey.IsActive(true)).
		Order(ent.Asc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active keys: %w", err)
	}
	secrets := make([]string, 0, len(rows))
	for _, row := range rows {
		secrets = append(secrets, row.KeyValue)
	}
	return secrets, nil
}

func (r *keyRepo) SetActive(ctx context.Context, id string, active bool) error {
	err := r.client.APIKey.UpdateOneID(id).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set key %s active=%t: %w", id, active, err)
	}
	return nil
}

func (r *keyRepo) Delete(ctx context.Context, id string) error {
	err := r.client.APIKey.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete key %s: %w", id, err)
	}
	return nil
}

func entKeyToKey(row *ent.APIKey) *APIKey {
	return &APIKey{
		ID:       row.ID,
		Label:    row.Label,
		Secret:   row.KeyValue,
		IsActive: row.IsActive,
	}
}
