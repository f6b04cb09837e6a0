package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ozplan/retirement-planner/internal/calculation"
	"github.com/ozplan/retirement-planner/internal/config"
	"github.com/ozplan/retirement-planner/internal/output"
)

var (
	inputFile  string
	formatName string
	writeFile  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run the projection for every scenario in an input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}
		log.Debug().Int("scenarios", len(file.Scenarios)).Str("file", inputFile).Msg("input loaded")

		engine := calculation.NewEngine()
		engine.SetLogger(zerologAdapter{log: log})

		report, err := engine.RunScenarios(cmd.Context(), file.Scenarios, file.Settings)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %s)",
				formatName, strings.Join(output.FormatNames(), ", "))
		}

		if writeFile {
			ext := formatter.Name()
			if ext == "console" {
				ext = "txt"
			}
			filename, err := output.WriteFormatted(formatter, report, ext)
			if err != nil {
				return err
			}
			log.Info().Str("file", filename).Msg("report written")
			return nil
		}

		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(data)
		return nil
	},
}

func init() {
	projectCmd.Flags().StringVarP(&inputFile, "input", "i", "", "scenario YAML file (required)")
	projectCmd.Flags().StringVarP(&formatName, "format", "f", defaults.Format, "output format: console, csv, json")
	projectCmd.Flags().BoolVarP(&writeFile, "write", "w", false, "write a timestamped report file instead of stdout")
	projectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(projectCmd)
}
