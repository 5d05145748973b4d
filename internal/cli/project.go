package cli

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"finance-engine/internal/engine"
	"finance-engine/internal/model"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run one projection from a parameter file",
	Long:  `Read a FinanceParams JSON file, project it and print the year sequence to stdout.`,
	RunE:  runProject,
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run a scenario batch from a file",
	Long:  `Read a JSON file mapping scenario name to FinanceParams and print every projection to stdout.`,
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(scenariosCmd)

	projectCmd.Flags().StringP("file", "f", "", "Path to parameter JSON file")
	projectCmd.Flags().Int("years", engine.DefaultHorizonYears, "Projection horizon in years")
	projectCmd.MarkFlagRequired("file")

	scenariosCmd.Flags().StringP("file", "f", "", "Path to scenarios JSON file")
	scenariosCmd.MarkFlagRequired("file")
}

func runProject(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	years, _ := cmd.Flags().GetInt("years")

	params, err := loadParams(path)
	if err != nil {
		return err
	}

	return printJSON(engine.Project(params, years))
}

func runScenarios(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var scenarios map[string]model.FinanceParams
	if err := json.Unmarshal(raw, &scenarios); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return fmt.Errorf("%s contains no scenarios", path)
	}

	return printJSON(engine.RunScenarios(scenarios))
}

func loadParams(path string) (*model.FinanceParams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var params model.FinanceParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &params, nil
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = os.Stdout.Write(b)
	return err
}
