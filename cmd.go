package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:   "effortgantt",
		Short: "Turn consultant assignment sheets into weekly Gantt segments",
	}

	// command for running the whole batch on one input file
	var params GenerateParams
	generateCmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Process one assignment sheet into chart segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Generate(args[0], params)
		},
	}
	generateCmd.Flags().StringVar(&params.Mode, "mode", string(ModeClipped), "segment mode: clipped or fullweek")
	generateCmd.Flags().BoolVar(&params.SkillAware, "skills", false, "explode rows per skill and key segments by skill")
	generateCmd.Flags().StringVar(&params.From, "from", "", "only keep segments starting on or after this date")
	generateCmd.Flags().StringVar(&params.To, "to", "", "only keep segments ending on or before this date")
	generateCmd.Flags().StringSliceVar(&params.Consultants, "consultants", nil, "only keep these consultants")
	generateCmd.Flags().StringSliceVar(&params.SkillFilter, "skill-filter", nil, "only keep these skills")
	generateCmd.Flags().BoolVar(&params.Interactive, "interactive", false, "pick consultants and skills from a menu")
	generateCmd.Flags().StringVar(&params.OutPath, "out", "", "write the chart payload to this file")
	generateCmd.Flags().StringVar(&params.PushURL, "push", "", "publish the chart payload to this renderer URL")
	generateCmd.Flags().BoolVar(&params.Table, "table", false, "print the segments as a table instead of JSON")

	// command for showing the expected input schema
	columnsCmd := &cobra.Command{
		Use:   "columns",
		Short: "Show the input columns the generator expects",
		Run: func(cmd *cobra.Command, args []string) {
			a.PrintColumns()
		},
	}

	// add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(columnsCmd)

	return rootCmd
}
