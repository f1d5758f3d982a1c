package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"sherlock/internal/adapter/fs"
	"sherlock/internal/domain"
	"sherlock/internal/usecase"
)

type lineCountFlags struct {
	extension       string
	top             int
	excludedFolders []string
	excludePatterns []string
	grouped         bool
	includeEmpty    bool
	progress        bool
	save            bool
}

func newLineCountCmd(a *app) *cobra.Command {
	f := &lineCountFlags{}

	cmd := &cobra.Command{
		Use:   "line-count PATH",
		Short: "Rank files or subdirectories by line count",
		Long: `Count the lines of every file under PATH with the given extension and print
the largest first, one "<count>, <path>" line each.

With --grouped, lines are totalled per immediate subdirectory of PATH instead;
files directly inside PATH are not counted.

Unreadable directories and files are skipped silently. A PATH that does not
exist prints nothing.

Examples:
  sherlock line-count . -x go
  sherlock line-count ~/src/app -x rs -f target -f .git -t 20
  sherlock line-count . -x ts --grouped --exclude-pattern "**/*.d.ts"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLineCount(cmd, a, f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.extension, "file-extension", "x", "", "file extension to search for, e.g. 'py', 'rs', 'js' (required)")
	cmd.Flags().IntVarP(&f.top, "top", "t", 0, "number of entries to display, 0 for none (default from config, 10)")
	cmd.Flags().StringArrayVarP(&f.excludedFolders, "excluded-folders", "f", nil, "folder name to ignore anywhere in a path (repeatable)")
	cmd.Flags().StringArrayVar(&f.excludePatterns, "exclude-pattern", nil, "doublestar glob of files to ignore (repeatable)")
	cmd.Flags().BoolVar(&f.grouped, "grouped", false, "total lines per immediate subdirectory")
	cmd.Flags().BoolVar(&f.includeEmpty, "include-empty", false, "with --grouped, also list subdirectories with no matching files")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "show a progress bar on stderr while counting")
	cmd.Flags().BoolVar(&f.save, "save", false, "save the result to the report history")
	cmd.MarkFlagRequired("file-extension")

	return cmd
}

func runLineCount(cmd *cobra.Command, a *app, f *lineCountFlags, root string) error {
	top := a.cfg.LineCount.Top
	if cmd.Flags().Changed("top") {
		top = f.top
	}
	if top < 0 {
		return fmt.Errorf("invalid top %d: must not be negative", top)
	}

	opts := usecase.LineCountOptions{
		Extension:          f.extension,
		Top:                &top,
		ExcludedFolders:    append(append([]string(nil), a.cfg.LineCount.ExcludedFolders...), f.excludedFolders...),
		ExcludePatterns:    append(append([]string(nil), a.cfg.LineCount.ExcludePatterns...), f.excludePatterns...),
		Grouped:            f.grouped,
		IncludeEmptyGroups: f.includeEmpty || a.cfg.LineCount.IncludeEmptyGroups,
	}

	a.log.Debugf("line-count %s: top=%d %+v", root, top, opts)

	uc := usecase.NewLineCountUseCase(fs.NewEnumerator(a.log), fs.LineCounter{}, a.log, opts)

	var progress usecase.ProgressFunc
	if f.progress && isTerminal(cmd.ErrOrStderr()) {
		progress = newProgress(cmd.ErrOrStderr())
	}

	entries := uc.Run(root, progress)

	out := cmd.OutOrStdout()
	printEntries(out, entries)

	if f.save {
		return saveReport(cmd, a, domain.Report{
			Root:      root,
			Extension: opts.Extension,
			Grouped:   opts.Grouped,
			Entries:   entries,
		})
	}
	return nil
}

func printEntries(w io.Writer, entries []domain.LineCount) {
	for _, e := range entries {
		fmt.Fprintf(w, "%d, %q\n", e.Lines, e.Path)
	}
}

func saveReport(cmd *cobra.Command, a *app, report domain.Report) error {
	st, err := openReportStore(a)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.SaveReport(report)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved report %d\n", saved.ID)
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// newProgress renders a bar once the total number of files is known.
func newProgress(w io.Writer) usecase.ProgressFunc {
	var bar *progressbar.ProgressBar

	return func(processed, total int, currentFile string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionSetDescription("[cyan]Counting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
		}
		bar.Set(processed)
	}
}
