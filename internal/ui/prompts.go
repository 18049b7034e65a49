package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"

	"github.com/luxlux/koinly-csv-exporter/internal/exporter"
)

// SelectTargets prompts for the export targets. The combined all-transactions
// entry is listed first, like the pinned row in the Koinly wallet list.
func SelectTargets(targets []exporter.Target) ([]exporter.Target, error) {
	options := make([]string, len(targets))
	byLabel := make(map[string]exporter.Target, len(targets))

	for i, t := range targets {
		label := t.Name
		// Duplicate wallet names get the key appended so every row stays
		// selectable on its own.
		if _, taken := byLabel[label]; taken {
			label = fmt.Sprintf("%s (%s)", t.Name, t.Key)
		}
		options[i] = label
		byLabel[label] = t
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message:  "Wallets to export:",
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &selected, IconOption()); err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}

	picked := make([]exporter.Target, 0, len(selected))
	for _, label := range selected {
		picked = append(picked, byLabel[label])
	}
	return picked, nil
}

// SelectFormats prompts for the output format(s).
func SelectFormats() ([]exporter.Format, error) {
	var choice string

	err := huh.NewSelect[string]().
		Title("Export format:").
		Options(
			huh.NewOption("CSV", "csv"),
			huh.NewOption("JSON", "json"),
			huh.NewOption("Both", "both"),
		).
		Value(&choice).
		Run()
	if err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}

	return ParseFormats(choice)
}

// ParseFormats maps a format flag value to the formats to export.
func ParseFormats(s string) ([]exporter.Format, error) {
	switch s {
	case "csv":
		return []exporter.Format{exporter.FormatCSV}, nil
	case "json":
		return []exporter.Format{exporter.FormatJSON}, nil
	case "both":
		return []exporter.Format{exporter.FormatCSV, exporter.FormatJSON}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want csv, json or both)", s)
	}
}

// ConfirmRetry asks whether a failed target should be retried.
func ConfirmRetry(target exporter.Target) (bool, error) {
	retry := true

	err := huh.NewConfirm().
		Title(fmt.Sprintf("Export of %q failed. Retry?", target.Name)).
		Affirmative("Retry").
		Negative("Skip").
		Value(&retry).
		Run()

	return retry, err
}
