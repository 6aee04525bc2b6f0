package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/logger"
	"github.com/Sachin-ora/Interlink/internal/matching"
)

const (
	PromptReportBySource = "Report by source"
	PromptMatchesToFile  = "Dump matches to file"
	PromptExit           = "Exit"

	descriptionPreview = 80
)

var errExit = errors.New("exit requested")

var matchPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportBySource, PromptMatchesToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match <profile-id>",
	Short: "Rank internship listings against one student profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		match(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolP("no-prompt", "y", false, "print the matches and exit without the action prompt")
}

// match is the one-shot CLI flavor of the pipeline.
func match(cmd *cobra.Command, profileID string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	service, err := buildService(config, logger)
	if err != nil {
		logger.Fatal("building the match service", zap.Error(err))
	}

	result, err := service.Match(ctx, profileID)
	switch {
	case errors.Is(err, matching.ErrProfileNotFound):
		logger.Fatal("profile not found", zap.String("profile_id", profileID))
	case errors.Is(err, matching.ErrNoCandidates):
		logger.Info("exiting", zap.String("reason", "no internships found from any source"))
		return
	case err != nil:
		logger.Fatal("matching failed", zap.Error(err))
	}

	printMatches(result)

	if flag := cmd.Flag("no-prompt"); flag != nil && flag.Value.String() == "true" {
		return
	}

	for {
		_, action, err := matchPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, result *matching.Result, logger *zap.Logger) error {
	switch action {
	case PromptReportBySource:
		for source, matches := range result.ReportBySource() {
			fmt.Printf("%s: %d match(es)\n", source, len(matches))
		}
		return nil
	case PromptMatchesToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printMatches(result *matching.Result) {
	fmt.Printf("found %d match(es) for profile %s\n", result.MatchesFound, result.ProfileID)
	for i, m := range result.Matches {
		fmt.Printf("%2d. [%.3f] %s (%s)\n", i+1, m.Similarity, m.Title, m.Source)
		if m.Description != "" {
			fmt.Printf("    %s\n", logger.TruncateForLog(m.Description, descriptionPreview))
		}
		if m.URL != "" {
			fmt.Printf("    %s\n", m.URL)
		}
	}
}
