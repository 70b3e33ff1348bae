package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskline/internal/commands"
	"github.com/sandeepkv93/taskline/internal/config"
	"github.com/sandeepkv93/taskline/internal/logging"
	"github.com/sandeepkv93/taskline/internal/session"
	"github.com/sandeepkv93/taskline/internal/storage"
	"github.com/sandeepkv93/taskline/internal/update"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dataFile   string
	storage    string
	plain      bool
}

// newRootCommand wires config, storage and the chosen front end. Arguments,
// when given, are run as a single command line.
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "taskline [command line]",
		Short: "Keep a list of todos, deadlines and events",
		Long: "taskline keeps todos, deadlines and events in a plain text file.\n" +
			"Run without arguments for the chat window, or pass one command line, e.g.\n" +
			"  taskline deadline return book /by 2019-12-02 1800",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			interactive := len(args) == 0 && cfg.UI == config.UITUI && !flags.plain

			var console io.Writer = stderr
			if interactive {
				console = nil
			}
			logger, logCloser, err := logging.New(cfg.LogLevel, cfg.LogFile, console)
			if err != nil {
				return err
			}
			defer logCloser.Close()

			store, err := storage.Open(cfg.Storage, cfg.DataFile, logger)
			if err != nil {
				return err
			}
			sess := session.New(cmd.Context(), store, logger)
			defer func() {
				if err := sess.Close(); err != nil {
					logger.Warn("close store", slog.Any("err", err))
				}
			}()
			logger.Debug("session started",
				slog.String("storage", cfg.Storage),
				slog.String("data_file", cfg.DataFile),
				slog.Int("tasks", sess.Len()))

			switch {
			case len(args) > 0:
				return runOnce(cmd, sess, strings.Join(args, " "), stdout)
			case !interactive:
				return session.RunLoop(cmd.Context(), sess, session.NewLinePresenter(stdin, stdout))
			default:
				greeting := commands.Welcome
				if notice := sess.Notice(); notice != "" {
					greeting += "\n" + notice
				}
				program := tea.NewProgram(update.NewModel(sess, greeting, cfg.Markdown), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Config file (.yaml or .toml)")
	cmd.Flags().StringVarP(&flags.dataFile, "data", "d", "", "Task data file")
	cmd.Flags().StringVar(&flags.storage, "storage", "", "Storage backend (file or sqlite)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Use the line-oriented console instead of the chat window")
	return cmd
}

// resolveConfig layers defaults, the config file, TASKLINE_* variables and
// explicit flags, in that order.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.FromEnv(cfg)
	if cmd.Flags().Changed("data") {
		cfg.DataFile = flags.dataFile
	}
	if cmd.Flags().Changed("storage") {
		cfg.Storage = strings.ToLower(strings.TrimSpace(flags.storage))
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runOnce(cmd *cobra.Command, sess *session.Session, line string, stdout io.Writer) error {
	if notice := sess.Notice(); notice != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
	}
	resp := sess.Execute(cmd.Context(), line)
	fmt.Fprintln(stdout, resp.Text)
	if resp.IsError {
		return fmt.Errorf("command %q failed", line)
	}
	return nil
}
