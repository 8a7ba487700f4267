package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey stores one provider credential managed through the admin panel.
// The generation pool rotates over the secrets of active keys in
// creation order.
type APIKey struct {
	ent.Schema
}

func (APIKey) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Comment("UUID of the key"),
		field.String("label").
			Default("").
			Comment("Admin-facing name for the key"),
		field.String("key_value").
			NotEmpty().
			Sensitive().
			Comment("The provider API key secret"),
		field.Bool("is_active").
			Default(true).
			Comment("Inactive keys are skipped by the rotation pool"),
	}
}

func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
