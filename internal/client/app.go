package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// command is one client sub-command.
type command struct {
	usage string
	args  int
	admin bool
	run   func(ctx context.Context, args []string) (any, error)
}

type App struct {
	adapter     adapter.BlogAdapter
	credentials models.Credentials

	stdin  io.Reader
	stdout io.Writer

	commands map[string]command
	logger   *logger.Logger
}

// NewApp builds the client over blogAdapter. credentials are used to log in
// before admin commands when the adapter holds no token.
func NewApp(blogAdapter adapter.BlogAdapter, credentials models.Credentials, stdin io.Reader, stdout io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter:     blogAdapter,
		credentials: credentials,
		stdin:       stdin,
		stdout:      stdout,
		logger:      logger,
	}
	a.commands = a.registerCommands()

	return a
}

func (a *App) registerCommands() map[string]command {
	return map[string]command{
		"login": {usage: "login", run: func(ctx context.Context, _ []string) (any, error) {
			return a.adapter.Login(ctx, a.credentials)
		}},
		"articles": {usage: "articles", run: func(ctx context.Context, _ []string) (any, error) {
			return a.adapter.ListAllArticles(ctx)
		}},
		"recent": {usage: "recent", run: func(ctx context.Context, _ []string) (any, error) {
			return a.adapter.ListRecentArticles(ctx)
		}},
		"article": {usage: "article <id>", args: 1, run: func(ctx context.Context, args []string) (any, error) {
			return a.adapter.GetArticle(ctx, args[0])
		}},
		"save-article": {usage: "save-article <file.json|->", args: 1, admin: true, run: func(ctx context.Context, args []string) (any, error) {
			var article models.Article
			if err := a.readJSON(args[0], &article); err != nil {
				return nil, err
			}
			return a.adapter.SaveArticle(ctx, article)
		}},
		"update-article": {usage: "update-article <id> <file.json|->", args: 2, admin: true, run: func(ctx context.Context, args []string) (any, error) {
			var article models.Article
			if err := a.readJSON(args[1], &article); err != nil {
				return nil, err
			}
			return a.adapter.UpdateArticle(ctx, args[0], article)
		}},
		"remove-article": {usage: "remove-article <id>", args: 1, admin: true, run: func(ctx context.Context, args []string) (any, error) {
			return a.adapter.RemoveArticle(ctx, args[0])
		}},
		"quote": {usage: "quote", run: func(ctx context.Context, _ []string) (any, error) {
			return a.adapter.RandomQuote(ctx)
		}},
		"save-quote": {usage: "save-quote <file.json|->", args: 1, admin: true, run: func(ctx context.Context, args []string) (any, error) {
			var quote models.Quote
			if err := a.readJSON(args[0], &quote); err != nil {
				return nil, err
			}
			return a.adapter.SaveQuote(ctx, quote)
		}},
		"access": {usage: "access", admin: true, run: func(ctx context.Context, _ []string) (any, error) {
			return a.adapter.AccessCounts(ctx)
		}},
		"version": {usage: "version", run: func(ctx context.Context, _ []string) (any, error) {
			return a.adapter.Version(ctx)
		}},
	}
}

// Run executes args[0] with the remaining arguments and prints its result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	name, args := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, a.Usage())
	}
	if len(args) < cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrMissingArgs, cmd.usage)
	}

	if cmd.admin {
		if err := a.ensureToken(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	result, err := cmd.run(ctx, args)
	if err != nil {
		return err
	}

	return a.print(result)
}

// Usage lists the available commands.
func (a *App) Usage() string {
	usages := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		usages = append(usages, "  "+cmd.usage)
	}
	sort.Strings(usages)

	return "commands:\n" + strings.Join(usages, "\n")
}

func (a *App) ensureToken(ctx context.Context) error {
	if a.adapter.Token() != "" {
		return nil
	}
	if a.credentials.Login == "" || a.credentials.Password == "" {
		return ErrNoCredentials
	}

	if _, err := a.adapter.Login(ctx, a.credentials); err != nil {
		return err
	}
	return nil
}

// readJSON decodes the file at path, or stdin when path is "-", into dst.
func (a *App) readJSON(path string, dst any) error {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
