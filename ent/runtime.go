// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Mr-Gerald/graceful-path-web/ent/apikey"
	"github.com/Mr-Gerald/graceful-path-web/ent/llmrequestevent"
	"github.com/Mr-Gerald/graceful-path-web/ent/practicetest"
	"github.com/Mr-Gerald/graceful-path-web/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyMixin := schema.APIKey{}.Mixin()
	apikeyMixinFields0 := apikeyMixin[0].Fields()
	_ = apikeyMixinFields0
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyMixinFields0[0].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	// apikeyDescLabel is the schema descriptor for label field.
	apikeyDescLabel := apikeyFields[1].Descriptor()
	// apikey.DefaultLabel holds the default value on creation for the label field.
	apikey.DefaultLabel = apikeyDescLabel.Default.(string)
	// apikeyDescKeyValue is the schema descriptor for key_value field.
	apikeyDescKeyValue := apikeyFields[2].Descriptor()
	// apikey.KeyValueValidator is a validator for the "key_value" field. It is called by the builders before save.
	apikey.KeyValueValidator = apikeyDescKeyValue.Validators[0].(func(string) error)
	// apikeyDescIsActive is the schema descriptor for is_active field.
	apikeyDescIsActive := apikeyFields[3].Descriptor()
	// apikey.DefaultIsActive holds the default value on creation for the is_active field.
	apikey.DefaultIsActive = apikeyDescIsActive.Default.(bool)
	// apikeyDescID is the schema descriptor for id field.
	apikeyDescID := apikeyFields[0].Descriptor()
	// apikey.IDValidator is a validator for the "id" field. It is called by the builders before save.
	apikey.IDValidator = apikeyDescID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	practicetestMixin := schema.PracticeTest{}.Mixin()
	practicetestMixinFields0 := practicetestMixin[0].Fields()
	_ = practicetestMixinFields0
	practicetestFields := schema.PracticeTest{}.Fields()
	_ = practicetestFields
	// practicetestDescCreatedAt is the schema descriptor for created_at field.
	practicetestDescCreatedAt := practicetestMixinFields0[0].Descriptor()
	// practicetest.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicetest.DefaultCreatedAt = practicetestDescCreatedAt.Default.(func() time.Time)
	// practicetestDescTitle is the schema descriptor for title field.
	practicetestDescTitle := practicetestFields[1].Descriptor()
	// practicetest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	practicetest.TitleValidator = practicetestDescTitle.Validators[0].(func(string) error)
	// practicetestDescDuration is the schema descriptor for duration field.
	practicetestDescDuration := practicetestFields[2].Descriptor()
	// practicetest.DefaultDuration holds the default value on creation for the duration field.
	practicetest.DefaultDuration = practicetestDescDuration.Default.(string)
	// practicetestDescDifficulty is the schema descriptor for difficulty field.
	practicetestDescDifficulty := practicetestFields[3].Descriptor()
	// practicetest.DefaultDifficulty holds the default value on creation for the difficulty field.
	practicetest.DefaultDifficulty = practicetestDescDifficulty.Default.(string)
	// practicetestDescID is the schema descriptor for id field.
	practicetestDescID := practicetestFields[0].Descriptor()
	// practicetest.IDValidator is a validator for the "id" field. It is called by the builders before save.
	practicetest.IDValidator = practicetestDescID.Validators[0].(func(string) error)
}
