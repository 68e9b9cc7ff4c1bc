package client

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/lexsight/internal/adapter"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	adapter adapter.ServerAdapter
	session SessionStore

	in  *bufio.Reader
	out io.Writer

	// readPassword is replaced in tests.
	readPassword func() (string, error)
	// readFile is replaced in tests.
	readFile func(path string) ([]byte, error)

	buildInfo models.AppBuildInfo
	commands  map[string]command

	logger *logger.Logger
}

func NewApp(
	serverAdapter adapter.ServerAdapter,
	session SessionStore,
	buildInfo models.AppBuildInfo,
	in io.Reader,
	out io.Writer,
	logger *logger.Logger,
) *App {
	a := &App{
		adapter:   serverAdapter,
		session:   session,
		in:        bufio.NewReader(in),
		out:       out,
		readFile:  os.ReadFile,
		buildInfo: buildInfo,
		logger:    logger,
	}
	a.readPassword = func() (string, error) { return terminalPassword(a.in, a.out) }

	a.commands = map[string]command{
		"signup":    {usage: "signup [-email E] [-name N]", run: a.signup},
		"login":     {usage: "login [-email E]", run: a.login},
		"logout":    {usage: "logout", run: a.logout},
		"whoami":    {usage: "whoami", run: a.whoami},
		"extract":   {usage: "extract [-save] [-type contract|report|proposal] [-name N] <file>", run: a.extract},
		"list":      {usage: "list", run: a.list},
		"show":      {usage: "show <id>", run: a.show},
		"delete":    {usage: "delete <id>", run: a.delete},
		"summarize": {usage: "summarize <clause text>", run: a.summarize},
		"risk":      {usage: "risk [-file F] [<id>]", run: a.risk},
		"version":   {usage: "version", run: a.version},
	}

	return a
}

// Run restores the stored session and executes the subcommand in args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	token, err := a.session.Load()
	if err != nil {
		a.logger.Err(err).Msg("error loading session, continuing without it")
	}
	a.adapter.SetSessionToken(token)

	a.logger.Debug().Str("command", args[0]).Bool("has_session", token != "").Msg("running command")

	err = cmd.run(ctx, args[1:])
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w (%w)", ErrNotLoggedIn, err)
	}
	return err
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: lexsight <command> [flags]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := a.newFlagSet("signup")
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.SignupRequest{Email: *email, Name: *name}
	var err error
	if req.Email == "" {
		if req.Email, err = promptLine(a.in, a.out, "Email"); err != nil {
			return err
		}
	}
	if req.Password, err = a.readPassword(); err != nil {
		return err
	}

	user, err := a.adapter.Signup(ctx, req)
	if err != nil {
		return err
	}

	if err = a.session.Save(a.adapter.SessionToken()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed up as %s\n", user.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.LoginRequest{Email: *email}
	var err error
	if req.Email == "" {
		if req.Email, err = promptLine(a.in, a.out, "Email"); err != nil {
			return err
		}
	}
	if req.Password, err = a.readPassword(); err != nil {
		return err
	}

	user, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}

	if err = a.session.Save(a.adapter.SessionToken()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	err := a.adapter.Logout(ctx)
	if saveErr := a.session.Save(""); saveErr != nil {
		return errors.Join(err, saveErr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	if user.Name != "" {
		fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
		return nil
	}
	fmt.Fprintln(a.out, user.Email)
	return nil
}

func (a *App) extract(ctx context.Context, args []string) error {
	fs := a.newFlagSet("extract")
	save := fs.Bool("save", false, "store the extracted text as a document")
	docType := fs.String("type", string(models.DocumentTypeContract), "document type when saving")
	name := fs.String("name", "", "document name when saving (defaults to the file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: file", ErrMissingArgument)
	}

	path := fs.Arg(0)
	data, err := a.readFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	result, err := a.adapter.ExtractText(ctx, filepath.Base(path), data)
	if err != nil {
		return err
	}

	if !*save {
		fmt.Fprintln(a.out, result.Text)
		return nil
	}

	docName := *name
	if docName == "" {
		docName = result.FileName
	}

	id, err := a.adapter.CreateDocument(ctx, models.NewDocument{
		Name:    docName,
		Content: result.Text,
		Type:    models.DocumentType(*docType),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s (%d characters) as %s\n", docName, result.TextLength, id)
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	docs, err := a.adapter.ListDocuments(ctx)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCREATED")
	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Type, d.CreatedAt)
	}
	return tw.Flush()
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: id", ErrMissingArgument)
	}

	doc, err := a.adapter.GetDocument(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s, %s)\n\n%s\n", doc.Name, doc.Type, doc.CreatedAt, doc.Content)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: id", ErrMissingArgument)
	}

	if err := a.adapter.DeleteDocument(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	return nil
}

func (a *App) summarize(ctx context.Context, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("%w: clause text", ErrMissingArgument)
	}

	summary, err := a.adapter.SummarizeClause(ctx, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, summary)
	return nil
}

// risk analyses a stored document by id, or a local text file with -file.
func (a *App) risk(ctx context.Context, args []string) error {
	fs := a.newFlagSet("risk")
	file := fs.String("file", "", "plain text file to analyse instead of a stored document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		report string
		err    error
	)
	switch {
	case *file != "":
		data, readErr := a.readFile(*file)
		if readErr != nil {
			return fmt.Errorf("error reading %s: %w", *file, readErr)
		}
		report, err = a.adapter.AnalyzeRisk(ctx, string(data))
	case fs.NArg() == 1:
		report, err = a.adapter.AnalyzeDocumentRisk(ctx, fs.Arg(0))
	default:
		return fmt.Errorf("%w: document id or -file", ErrMissingArgument)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, report)
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "client: %s\n", a.buildInfo)

	v, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "server: %s (build %s, %s, commit %s)\n", v.Version, v.Build, v.Date, v.Commit)
	return nil
}
