package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/output"
	"github.com/vantagelabs/vantage/internal/plan"
	"github.com/vantagelabs/vantage/pkg/models"
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "Generate a phased development plan for a feature list",
		ArgsUsage: "<feature...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "complexity",
				Usage: "Plan complexity: simple, medium, complex, enterprise",
			},
			&cli.StringFlag{
				Name:  "focus",
				Usage: "Strategic focus recorded in the plan overview",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory for the markdown plan file",
			},
			&cli.BoolFlag{
				Name:  "no-write",
				Usage: "Print the plan without writing a file",
			},
		},
		Action: runPlanCmd,
	}
}

func runPlanCmd(c *cli.Context) error {
	features := featureArgs(c)
	if len(features) == 0 {
		return fmt.Errorf("at least one feature is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	builder := plan.NewBuilder(
		plan.WithComplexity(models.PlanComplexity(c.String("complexity"))),
		plan.WithPlanFocus(c.String("focus")),
	)
	p := builder.Build(features)

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	writeFile := cfg.Plans.WriteFile && !c.Bool("no-write")
	var path string
	if writeFile {
		dir := c.String("dir")
		if dir == "" {
			dir = cfg.Plans.Dir
		}
		path, err = plan.Write(p, dir)
		if err != nil {
			return err
		}
	}

	// The plan document is markdown; print it directly for text and
	// markdown formats, structured data otherwise.
	switch formatter.Format() {
	case output.FormatText, output.FormatMarkdown:
		fmt.Fprint(formatter.Writer(), plan.Render(p))
		if path != "" {
			fmt.Fprintln(formatter.Writer())
			formatter.Success("Plan written to %s", path)
		}
		return nil
	default:
		result := struct {
			Plan *models.DevelopmentPlan `json:"plan" toon:"plan"`
			Path string                  `json:"path,omitempty" toon:"path,omitempty"`
		}{p, path}
		return formatter.Output(result)
	}
}
