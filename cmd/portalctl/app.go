package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/internal/service"
	"github.com/noah-isme/college-portal/internal/view"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/export"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

const usage = `usage: portalctl <command> [flags]

commands:
  login          sign in and store the session token
  logout         sign out and forget the token
  whoami         show the signed-in user
  students       list students (admin)
  faculty        list faculty (admin)
  courses        list the course catalogue
  my-courses     list your enrolled courses (student)
  grades         show your grade report (student)
  notices        show recent announcements
  announce       publish an announcement (admin)
  delete         delete a student, faculty member, announcement or course (admin)
  export         export a filtered roster as csv or pdf (admin)
`

type app struct {
	api          *apiclient.Client
	store        tokenstore.Store
	logger       *zap.Logger
	flash        time.Duration
	noticeLimit  int
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	readPassword func(prompt string) (string, error) // overrides the terminal prompt

	lines *bufio.Reader
}

func (a *app) deps() portal.Deps {
	return portal.Deps{
		API:           a.api,
		Tokens:        a.store,
		Logger:        a.logger,
		FlashDuration: a.flash,
		NoticeLimit:   a.noticeLimit,
	}
}

// run executes one command and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return 2
	}

	commands := map[string]func(context.Context, []string) error{
		"login":      a.login,
		"logout":     a.logout,
		"whoami":     a.whoami,
		"students":   a.students,
		"faculty":    a.faculty,
		"courses":    a.courses,
		"my-courses": a.myCourses,
		"grades":     a.grades,
		"notices":    a.notices,
		"announce":   a.announce,
		"delete":     a.delete,
		"export":     a.export,
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err := cmd(ctx, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(a.stderr, "error: %s\n", appErrors.Message(err))
		return 1
	}
	return 0
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) readLine(prompt string) (string, error) {
	if a.lines == nil {
		a.lines = bufio.NewReader(a.stdin)
	}
	fmt.Fprint(a.stdout, prompt)
	line, err := a.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirmer asks on the terminal unless -yes was given.
func (a *app) confirmer(yes bool) remote.Confirmer {
	if yes {
		return remote.Approved(true)
	}
	return remote.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		answer, err := a.readLine(prompt + " [y/N]: ")
		if err != nil {
			return false, nil
		}
		answer = strings.ToLower(answer)
		return answer == "y" || answer == "yes", nil
	})
}

// password reads without echo on a terminal and falls back to a plain line
// otherwise.
func (a *app) password(prompt string) (string, error) {
	if a.readPassword != nil {
		return a.readPassword(prompt)
	}
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.stderr, prompt)
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return a.readLine(prompt)
}

func (a *app) table(header ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	return w
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "account email")
	role := fs.String("role", "", "admin, faculty or student")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		value, err := a.readLine("Email: ")
		if err != nil {
			return err
		}
		*email = value
	}
	password, err := a.password("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	resp, err := a.api.Auth.Login(ctx, models.LoginRequest{
		Email:    strings.TrimSpace(*email),
		Password: password,
		Role:     models.Role(strings.ToLower(*role)),
	})
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return appErrors.Clone(appErrors.ErrUnauthorized, "login response carried no token")
	}
	if err := a.store.Save(ctx, resp.Token); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Signed in as %s (%s)\n", resp.User.Name, resp.User.Role)
	return nil
}

func (a *app) logout(ctx context.Context, _ []string) error {
	if err := a.api.Auth.Logout(ctx); err != nil {
		a.logger.Warn("backend logout failed", zap.Error(err))
	}
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Signed out")
	return nil
}

func (a *app) whoami(ctx context.Context, _ []string) error {
	identity, err := portal.ResolveIdentity(ctx, a.store, a.api.Auth)
	if err != nil {
		return err
	}
	name := identity.Name
	if name == "" {
		name = identity.UserID
	}
	fmt.Fprintf(a.stdout, "%s (%s)\n", name, identity.Role)
	return nil
}

func rosterFlags(fs *flag.FlagSet) *view.RosterFilter {
	f := &view.RosterFilter{}
	fs.StringVar(&f.Search, "search", "", "case-insensitive search")
	fs.StringVar(&f.Department, "department", "", "exact department")
	fs.StringVar(&f.Semester, "semester", "", "exact semester")
	return f
}

func (a *app) students(ctx context.Context, args []string) error {
	fs := a.flags("students")
	filter := rosterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	page := portal.NewStudentsPage(a.deps())
	if err := page.Load(ctx); err != nil {
		return err
	}
	w := a.table("STUDENT ID", "NAME", "EMAIL", "DEPARTMENT", "SEMESTER")
	for _, s := range page.Filtered(*filter) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.StudentID, s.Name, s.Email, s.Department, s.Semester)
	}
	return w.Flush()
}

func (a *app) faculty(ctx context.Context, args []string) error {
	fs := a.flags("faculty")
	filter := rosterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	page := portal.NewFacultyPage(a.deps())
	if err := page.Load(ctx); err != nil {
		return err
	}
	w := a.table("EMPLOYEE ID", "NAME", "EMAIL", "DEPARTMENT", "DESIGNATION")
	for _, f := range page.Filtered(*filter) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.EmployeeID, f.Name, f.Email, f.Department, f.Designation)
	}
	return w.Flush()
}

func (a *app) printCourses(courses []models.Course) error {
	w := a.table("CODE", "NAME", "SEMESTER", "CREDITS", "INSTRUCTOR")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.Code, c.Name, c.Semester, c.Credits, c.Instructor.Name)
	}
	return w.Flush()
}

func (a *app) courses(ctx context.Context, args []string) error {
	fs := a.flags("courses")
	semester := fs.String("semester", "", "semester")
	search := fs.String("search", "", "name or code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page := portal.NewCoursesPage(a.deps())
	if err := page.Load(ctx, *semester); err != nil {
		return err
	}
	return a.printCourses(page.Filtered(*search))
}

func (a *app) myCourses(ctx context.Context, args []string) error {
	fs := a.flags("my-courses")
	semester := fs.String("semester", "", "semester")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page := portal.NewStudentCoursesPage(a.deps())
	if err := page.SelectSemester(ctx, *semester); err != nil {
		return err
	}
	return a.printCourses(page.Data())
}

func (a *app) grades(ctx context.Context, args []string) error {
	fs := a.flags("grades")
	semester := fs.String("semester", "", "semester")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page := portal.NewGradesPage(a.deps())
	if err := page.SelectSemester(ctx, *semester); err != nil {
		return err
	}
	w := a.table("COURSE", "SCORE", "GRADE")
	for _, g := range page.Grades() {
		course := g.CourseCode
		if course == "" {
			course = g.Course.Name
		}
		fmt.Fprintf(w, "%s\t%.1f\t%s\n", course, g.Score, g.Grade)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if summary := page.Data(); summary != nil {
		fmt.Fprintf(a.stdout, "GPA %.2f  CGPA %.2f\n", summary.GPA, summary.CGPA)
	}
	return nil
}

func (a *app) notices(ctx context.Context, args []string) error {
	fs := a.flags("notices")
	limit := fs.Int("limit", 0, "maximum announcements")
	priority := fs.String("priority", "", "urgent, high, normal or low")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page := portal.NewNoticeBoard(a.deps())
	if err := page.Load(ctx, *limit); err != nil {
		return err
	}
	w := a.table("DATE", "PRIORITY", "TITLE")
	for _, n := range page.Filtered(view.AnnouncementFilter{Priority: *priority}) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", n.CreatedAt.Format("2006-01-02"), n.Priority, n.Title)
	}
	return w.Flush()
}

// announce publishes a new announcement, or edits an existing one when -id is
// given. Edits start from the stored announcement and change only the flags set.
func (a *app) announce(ctx context.Context, args []string) error {
	fs := a.flags("announce")
	id := fs.String("id", "", "announcement to edit")
	title := fs.String("title", "", "title")
	content := fs.String("content", "", "content")
	priority := fs.String("priority", "", "urgent, high, normal (default) or low")
	audience := fs.String("audience", "", "all (default), students or faculty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var in models.AnnouncementInput
	if *id != "" {
		current, err := a.api.Announcements.Get(ctx, *id)
		if err != nil {
			return err
		}
		in = models.InputFrom(*current)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			in.Title = *title
		case "content":
			in.Content = *content
		case "priority":
			in.Priority = models.AnnouncementPriority(*priority)
		case "audience":
			in.TargetAudience = models.AnnouncementAudience(*audience)
		}
	})

	page := portal.NewAnnouncementsPage(a.deps())
	var err error
	if *id != "" {
		err = page.Update(ctx, *id, in)
	} else {
		err = page.Create(ctx, in)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, page.State().Notice)
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	fs := a.flags("delete")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if len(args) < 2 {
		return appErrors.Clone(appErrors.ErrValidation, "usage: portalctl delete student|faculty|announcement|course <id> [-yes]")
	}
	kind, id := args[0], args[1]
	if err := fs.Parse(args[2:]); err != nil {
		return err
	}

	confirm := a.confirmer(*yes)
	var (
		err    error
		notice func() string
	)
	switch kind {
	case "student":
		page := portal.NewStudentsPage(a.deps())
		err = page.Delete(ctx, confirm, id)
		notice = func() string { return page.State().Notice }
	case "faculty":
		page := portal.NewFacultyPage(a.deps())
		err = page.Delete(ctx, confirm, id)
		notice = func() string { return page.State().Notice }
	case "announcement":
		page := portal.NewAnnouncementsPage(a.deps())
		err = page.Delete(ctx, confirm, id)
		notice = func() string { return page.State().Notice }
	case "course":
		page := portal.NewCoursesPage(a.deps())
		err = page.Delete(ctx, confirm, id)
		notice = func() string { return page.State().Notice }
	default:
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("cannot delete %q", kind))
	}
	if errors.Is(err, appErrors.ErrNotConfirmed) {
		fmt.Fprintln(a.stdout, "Cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, notice())
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := a.flags("export")
	filter := rosterFlags(fs)
	format := fs.String("format", "csv", "csv or pdf")
	out := fs.String("out", "", "output file (default <roster>.<format>)")
	if len(args) < 1 {
		return appErrors.Clone(appErrors.ErrValidation, "usage: portalctl export students|faculty [flags]")
	}
	roster := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}

	exports := service.NewExportService(nil)
	var (
		content []byte
		count   int
	)
	switch roster {
	case "students":
		page := portal.NewStudentsPage(a.deps())
		if err := page.Load(ctx); err != nil {
			return err
		}
		items := page.Filtered(*filter)
		content, err = exports.Students(f, items)
		count = len(items)
	case "faculty":
		page := portal.NewFacultyPage(a.deps())
		if err := page.Load(ctx); err != nil {
			return err
		}
		items := page.Filtered(*filter)
		content, err = exports.Faculty(f, items)
		count = len(items)
	default:
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown roster %q", roster))
	}
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = export.Filename(roster, f)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(a.stdout, "Wrote %d records to %s\n", count, path)
	return nil
}
