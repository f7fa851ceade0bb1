package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dbforge/internal/platform"
	"dbforge/internal/services"
	"dbforge/internal/utils"
)

// formFlags maps flag names to the form field they override.
var formFlags = []struct {
	name  string
	usage string
	field func(f *services.FormFields) *string
}{
	{"url", "Connection URL (jdbc:mysql://, mysql://, a go-sql-driver DSN, or sqlite:<path>)", func(f *services.FormFields) *string { return &f.ConnectionURL }},
	{"username", "Database user", func(f *services.FormFields) *string { return &f.Username }},
	{"password", "Database password", func(f *services.FormFields) *string { return &f.Password }},
	{"project", "Target Go project directory (must contain go.mod)", func(f *services.FormFields) *string { return &f.TargetProjectPath }},
	{"entity-package", "Package for generated models, e.g. internal/entity", func(f *services.FormFields) *string { return &f.EntityPackageName }},
	{"service-package", "Package for query code and services, e.g. internal/service", func(f *services.FormFields) *string { return &f.ServicePackageName }},
	{"author", "Author written into service files", func(f *services.FormFields) *string { return &f.AuthorName }},
	{"tables", "Semicolon-separated table names", func(f *services.FormFields) *string { return &f.Tables }},
	{"domains", "Semicolon-separated domain names (derived from tables when empty)", func(f *services.FormFields) *string { return &f.Domains }},
}

// GenerateCmd returns the generate command
func GenerateCmd(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate code for the configured tables",
		Long: `Generate models, query code and services for each table.

Settings saved by the last run are used as defaults. Any flag given on the
command line replaces the saved value. When --tables changes and --domains is
not given, domains are derived from the table names.

Examples:
  dbforge generate
  dbforge generate --tables "t_order;t_user"
  dbforge generate --tables-file tables.txt --no-open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rt, cmd)
		},
	}

	for _, f := range formFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().String("tables-file", "", "Read table names from a file, one per line; # starts a comment")
	cmd.Flags().Bool("no-open", false, "Do not open the target directory afterwards")

	return cmd
}

func runGenerate(rt *Runtime, cmd *cobra.Command) error {
	svc, closeDB := rt.services()
	defer closeDB()

	noOpen, _ := cmd.Flags().GetBool("no-open")
	if noOpen {
		svc.Opener = platform.ForOS("", nil, nil, rt.logger())
	}
	form := svc.Form(rt.alerter())

	fields, err := startingFields(form)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &fields); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	progress := func(stage string) {
		color.New(color.FgHiBlack).Fprintf(rt.Err, "  %s\n", stage)
	}
	result, err := form.Generate(ctx, fields, progress)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReported, err)
	}

	printResult(rt, result)
	return nil
}

func startingFields(form *services.FormController) (services.FormFields, error) {
	restored, err := form.Restore()
	if err != nil {
		return services.FormFields{}, fmt.Errorf("failed to restore settings: %w", err)
	}
	if restored == nil {
		return form.Defaults(), nil
	}
	return *restored, nil
}

func applyFlags(cmd *cobra.Command, fields *services.FormFields) error {
	flags := cmd.Flags()
	for _, f := range formFlags {
		if flags.Changed(f.name) {
			v, _ := flags.GetString(f.name)
			*f.field(fields) = v
		}
	}

	if flags.Changed("tables-file") {
		if flags.Changed("tables") {
			return fmt.Errorf("use either --tables or --tables-file, not both")
		}
		path, _ := flags.GetString("tables-file")
		lines, err := utils.ReadNonEmptyLines(path)
		if err != nil {
			return fmt.Errorf("failed to read tables file: %w", err)
		}
		fields.Tables = strings.Join(lines, ";")
	}

	tablesChanged := flags.Changed("tables") || flags.Changed("tables-file")
	if tablesChanged && !flags.Changed("domains") {
		fields.Domains = ""
	}
	return nil
}

func printResult(rt *Runtime, result *services.GenerateResult) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(rt.Out, "Generated %d files in %s\n", result.Report.FileCount(), result.Config.TargetProjectPath)

	section := func(title string, files []string) {
		if len(files) == 0 {
			return
		}
		fmt.Fprintf(rt.Out, "%s:\n", title)
		for _, f := range files {
			fmt.Fprintf(rt.Out, "  %s\n", f)
		}
	}
	section("Entities", result.Report.EntityFiles)
	section("Queries", result.Report.QueryFiles)
	section("Services", result.Report.ServiceFiles)
	section("Kept existing", result.Report.Skipped)
	section("Changed in git", result.Changed)

	if !result.Saved {
		color.New(color.FgYellow).Fprintln(rt.Out, "Settings were not saved.")
	}
}
