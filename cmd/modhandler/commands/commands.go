package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakkoble/modhandler/internal/version"
	"github.com/jakkoble/modhandler/pkg/cobrax/topics"
	"github.com/jakkoble/modhandler/pkg/config"
	"github.com/jakkoble/modhandler/pkg/core"
	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/filesystem"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/profiles"
	"github.com/jakkoble/modhandler/pkg/syncdir"
	"github.com/jakkoble/modhandler/pkg/ui"
	"github.com/jakkoble/modhandler/pkg/ui/display"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// render writes a view in the format selected by --format
func render(cmd *cobra.Command, view interface{}) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(view)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", ui.FormatAuto.String(), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func newListCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			view, err := a.catalogView()
			if err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.list")
			logger.Info().Int("profiles", len(view.Profiles)).Msg("Listed profiles")
			return render(cmd, view)
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func newApplyCmd(opts *globalOptions) *cobra.Command {
	var (
		clearFirst      bool
		keep            bool
		dryRun          bool
		continueOnError bool
	)

	cmd := &cobra.Command{
		Use:               "apply <profile>",
		Short:             MsgApplyShort,
		Long:              MsgApplyLong,
		Example:           MsgApplyExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: profileNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.apply")

			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			catalog, err := a.catalog()
			if err != nil {
				return err
			}
			profile, err := profiles.Find(catalog, args[0])
			if err != nil {
				return err
			}
			if _, err := a.openModsDir(); err != nil {
				return err
			}

			policy := syncdir.AbortOnError
			if continueOnError {
				policy = syncdir.ContinueOnError
			}
			logger.Info().
				Str("profile", profile.Name).
				Bool("clear", clearFirst && !keep).
				Bool("dryRun", dryRun).
				Str("policy", policy.String()).
				Msg("Starting apply")

			result, err := core.ApplyProfile(core.ApplyOptions{
				Profile:    profile,
				ModsDir:    a.paths.ModsDir(),
				Clear:      clearFirst && !keep,
				DryRun:     dryRun,
				Policy:     policy,
				FileSystem: a.fs,
			})
			if err != nil {
				return err
			}
			return render(cmd, display.NewApplyView(result))
		},
	}

	cmd.Flags().BoolVar(&clearFirst, "clear", false, MsgFlagClear)
	cmd.Flags().BoolVar(&keep, "keep", false, MsgFlagKeep)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, MsgFlagContinueOnError)
	cmd.MarkFlagsMutuallyExclusive("clear", "keep")
	addFormatFlag(cmd)
	return cmd
}

func newClearCmd(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   MsgClearShort,
		Long:    MsgClearLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			result, err := core.ClearMods(core.ClearOptions{
				ModsDir:    a.paths.ModsDir(),
				DryRun:     dryRun,
				FileSystem: a.fs,
			})
			if err != nil {
				return err
			}
			return render(cmd, display.NewClearView(a.paths.ModsDir(), dryRun, result))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	addFormatFlag(cmd)
	return cmd
}

func newPathCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "path",
		Aliases: []string{"paths"},
		Short:   MsgPathShort,
		Long:    MsgPathLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			return render(cmd, a.pathsView())
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		effective bool
		write     bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			var root string
			if effective || write {
				cfg, r, err := loadConfig(opts)
				if err != nil {
					return err
				}
				root = r
				if effective {
					data, err := config.Marshal(cfg)
					if err != nil {
						return errors.Wrap(err, errors.ErrInternal, "Failed rendering configuration.")
					}
					content = string(data)
				}
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			target := filepath.Join(root, config.FileName)
			if err := filesystem.NewOS().WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileCreate, "Failed writing configuration file.").
					WithDetail("path", target)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if tm == nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if tm == nil {
				return errors.New(errors.ErrInternal, "Help topics are not available.")
			}
			if len(args) == 0 {
				tm.PrintTopicList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			return tm.PrintTopic(cmd.OutOrStdout(), args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "modhandler version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "MODHANDLER",
				Section: "1",
				Source:  "modhandler " + version.Version,
				Manual:  "modhandler manual",
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, "Failed creating man page directory.").
					WithDetail("path", dir)
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", filepath.Join(os.TempDir(), "modhandler-man"), MsgFlagManDir)
	return cmd
}

// profileNamesCompletion completes profile names, or numbers when the
// user starts typing a digit
func profileNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		a, err := loadApp(opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		catalog, err := a.catalog()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var completions []string
		for i, name := range profiles.GetProfileNames(catalog) {
			number := fmt.Sprint(i + 1)
			if strings.HasPrefix(number, toComplete) && toComplete != "" {
				completions = append(completions, number+"\t"+name)
				continue
			}
			if strings.HasPrefix(name, toComplete) {
				completions = append(completions, name)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
