// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "label", Type: field.TypeString, Default: ""},
		{Name: "key_value", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_created_at",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
			{
				Name:    "apikey_is_active",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// PracticeTestsColumns holds the columns for the "practice_tests" table.
	PracticeTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "duration", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
	}
	// PracticeTestsTable holds the schema information for the "practice_tests" table.
	PracticeTestsTable = &schema.Table{
		Name:       "practice_tests",
		Columns:    PracticeTestsColumns,
		PrimaryKey: []*schema.Column{PracticeTestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicetest_created_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeTestsColumns[1]},
			},
			{
				Name:    "practicetest_difficulty",
				Unique:  false,
				Columns: []*schema.Column{PracticeTestsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		LlmRequestEventsTable,
		PracticeTestsTable,
	}
)

func init() {
}
