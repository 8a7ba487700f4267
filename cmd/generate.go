package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate practice questions with AI",
	Long:  "Generates NCLEX-style questions one at a time and saves each into a practice test as soon as it is produced, so an interrupted run keeps everything generated so far.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		testID, _ := cmd.Flags().GetString("test")
		title, _ := cmd.Flags().GetString("title")

		if topic == "" {
			return errors.New("--topic is required")
		}
		if count < 1 {
			return errors.New("--count must be at least 1")
		}
		diff := quizgen.Difficulty(difficulty)
		if !diff.Valid() {
			return fmt.Errorf("invalid difficulty %q (easy, medium, hard)", difficulty)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Resolve the target test before spending any tokens.
		var doc *content.PracticeTest
		if testID != "" {
			doc, err = st.Tests().Get(ctx, testID)
			if err != nil {
				return fmt.Errorf("load test: %w", err)
			}
			if doc == nil {
				return fmt.Errorf("test %s not found", testID)
			}
		} else {
			if title == "" {
				title = fmt.Sprintf("%s practice test", topic)
			}
			doc = &content.PracticeTest{
				ID:         uuid.New().String(),
				Title:      title,
				Duration:   "30 mins",
				Difficulty: diff,
			}
		}

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}
		pool, err := buildPool(ctx, st, cfg)
		if err != nil {
			return err
		}
		provider, err := llm.NewProvider(cfg, pool, st.Events())
		if err != nil {
			return err
		}
		svc := quizgen.NewService(quizgen.NewGenerator(provider, quizgen.DefaultConfig()))

		var saveErr error
		onQuestion := func(q quizgen.Question) {
			doc.Questions = append(doc.Questions, q)
			if err := st.Tests().Put(ctx, doc); err != nil && saveErr == nil {
				saveErr = err
			}
			fmt.Printf("[%d/%d] %s\n", len(doc.Questions), count, q.Prompt)
		}
		onProgress := func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		}

		produced, genErr := svc.Generate(ctx, quizgen.GenerateRequest{
			Topic:      topic,
			Count:      count,
			Difficulty: diff,
		}, onQuestion, onProgress)

		if saveErr != nil {
			return fmt.Errorf("save questions: %w", saveErr)
		}
		if genErr != nil && !errors.Is(genErr, keypool.ErrNoCredentials) {
			return genErr
		}

		fmt.Printf("\nGenerated %d of %d questions into test %s (%s)\n", len(produced), count, doc.ID, doc.Title)
		if genErr != nil {
			return genErr
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Clinical topic, e.g. \"pharmacology\"")
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions to generate")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	generateCmd.Flags().String("test", "", "Append to an existing test ID instead of creating a new test")
	generateCmd.Flags().String("title", "", "Title for the new test (ignored with --test)")
}
