package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"placement-service/internal/fitcheck/checker"
	"placement-service/internal/fitcheck/models"
	"placement-service/internal/fitcheck/rules"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a layout file",
		Long: `Check reads a layout file with roomGeometry, furnitureItems and options
and prints the fit-check result.

Example:
  fitcheck-cli check --layout living.json
  fitcheck-cli check --layout living.json --rules rules.yaml --json`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	cmd.Flags().String("layout", "", "layout JSON file (required)")
	cmd.Flags().Bool("boundary-only", false, "run the boundary check only")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	layoutPath, _ := cmd.Flags().GetString("layout")
	rulesPath, _ := cmd.Flags().GetString("rules")
	boundaryOnly, _ := cmd.Flags().GetBool("boundary-only")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	req, err := readLayout(layoutPath)
	if err != nil {
		return err
	}

	store, err := rules.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	c := checker.New(store)
	var result models.FitCheckResult
	if boundaryOnly {
		result = c.ValidatePlacement(req.RoomGeometry, req.FurnitureItems)
	} else {
		result = c.CheckFit(req.RoomGeometry, req.FurnitureItems, req.Options)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		printResult(out, result)
	}

	if !result.Passed {
		return errNotPassed
	}
	return nil
}

func readLayout(path string) (models.FitCheckRequest, error) {
	var req models.FitCheckRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read layout: %w", err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse layout: %w", err)
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// printResult prints the result in human-readable format.
func printResult(w io.Writer, r models.FitCheckResult) {
	status := "PASSED"
	if !r.Passed {
		status = "FAILED"
	}
	fmt.Fprintf(w, "Result: %s\n", status)
	fmt.Fprintf(w, "Score:  %d\n", r.Score)

	if len(r.Issues) > 0 {
		fmt.Fprintf(w, "Issues:\n")
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  [%s] %s: %s\n", issue.Severity, issue.Type, issue.Message)
		}
	}
	if len(r.Suggestions) > 0 {
		fmt.Fprintf(w, "Suggestions:\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}
