package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/taskflow/internal/export"
	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/repo"
)

type queryFlags struct {
	filter string
	sort   string
	search string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&q.filter, "filter", "f", "all", "Filter: all, active, completed")
	cmd.Flags().StringVarP(&q.sort, "sort", "s", "date", "Sort: date, name, progress")
	cmd.Flags().StringVarP(&q.search, "search", "q", "", "Match title or description")
}

func (q *queryFlags) query() (repo.Query, error) {
	f, ok := repo.ParseFilter(q.filter)
	if !ok {
		return repo.Query{}, fmt.Errorf("unknown filter %q", q.filter)
	}
	s, ok := repo.ParseSort(q.sort)
	if !ok {
		return repo.Query{}, fmt.Errorf("unknown sort %q", q.sort)
	}
	return repo.Query{Filter: f, Sort: s, Search: q.search}, nil
}

func newProjectsCmd(e *env) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Long: `List projects with filtering, sorting and search.

Examples:
  taskflow projects
  taskflow projects --filter active --sort progress
  taskflow projects --search website`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := q.query()
			if err != nil {
				return err
			}
			app, err := e.openCore()
			if err != nil {
				return err
			}
			defer app.Close()

			projects := app.Repo.List(query)
			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects found.")
				return nil
			}
			for _, p := range projects {
				printProject(cmd, p)
			}
			return nil
		},
	}
	q.register(cmd)
	return cmd
}

func printProject(cmd *cobra.Command, p model.Project) {
	mark := "○"
	if p.IsCompleted {
		mark = "✓"
	}
	due := ""
	if p.DueDate != nil {
		due = " due " + p.DueDate.Local().Format(time.DateOnly)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %-36s %-12s %3d/%-3d %4.0f%%%s\n",
		mark, p.Title, p.Status, p.CompletedTasksCount, p.TasksCount, p.ProgressPercentage()*100, due)
}

func newExportCmd(e *env) *cobra.Command {
	var (
		q      queryFlags
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export projects to CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			query, err := q.query()
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = export.DefaultFilename(f, time.Now().Format(time.DateOnly))
			}

			app, err := e.openCore()
			if err != nil {
				return err
			}
			defer app.Close()

			projects := app.Repo.List(query)
			if err := export.Write(f, projects, path); err != nil {
				return err
			}
			e.log.Info("exported projects", "format", f, "path", path, "count", len(projects))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d projects to %s\n", len(projects), path)
			return nil
		},
	}
	q.register(cmd)
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default taskflow-projects-<date>.<format>)")
	return cmd
}
