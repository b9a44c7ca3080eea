package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/and161185/moment-keeper/internal/client"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/query"
	"github.com/and161185/moment-keeper/internal/service"
	"github.com/and161185/moment-keeper/internal/store"
)

const (
	longDate  = "January 2, 2006"
	shortDate = "Jan 2, 2006"
)

// viewFunc renders one guarded command.
type viewFunc func(ctx context.Context, b client.Backend, args []string, out io.Writer) error

var views = map[string]viewFunc{
	"home":        homeView,
	"list":        listView,
	"get":         getView,
	"add":         addView,
	"edit":        editView,
	"anniversary": anniversaryView,
	"countdown":   countdownView,
	"whoami":      whoamiView,
}

// errStop ends a countdown watch after the first tick.
var errStop = errors.New("stop")

func homeView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("home", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	h, err := b.Home(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s - %s\n", h.Anniversary.Name, h.Anniversary.Date.Format(longDate))
	if !h.Saved {
		fmt.Fprintln(out, "(not set yet, run `mk anniversary -date YYYY-MM-DD`)")
	}
	fmt.Fprintf(out, "Countdown: %s\n\n", formatCountdown(h.Countdown))

	fmt.Fprintln(out, "Recent moments:")
	return writeMoments(out, h.Recent)
}

func listView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	q := fs.String("q", "", "search title, description and tags")
	sortBy := fs.String("sort", string(model.SortNewest), "newest|oldest|alphabetical")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mode, ok := query.ParseSortMode(*sortBy)
	if !ok {
		return fmt.Errorf("unknown sort %q", *sortBy)
	}

	ms, err := b.List(ctx, *q, mode)
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		fmt.Fprintln(out, "No moments found")
		return nil
	}
	return writeMoments(out, ms)
}

func getView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	id := fs.String("id", "", "moment id")
	story := fs.Bool("story", false, "export the story card as a text file")
	dir := fs.String("o", ".", "story output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" && fs.NArg() > 0 {
		*id = fs.Arg(0)
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	m, err := b.Get(ctx, *id)
	if err != nil {
		return err
	}
	if !*story {
		writeMoment(out, m)
		return nil
	}

	path := filepath.Join(*dir, storySlug(m.Title)+".txt")
	if filepath.Dir(path) != filepath.Clean(*dir) {
		return fmt.Errorf("story path %q escapes %q", path, *dir)
	}
	if err := os.WriteFile(path, []byte(storyCard(m)), 0o600); err != nil {
		return fmt.Errorf("write story: %w", err)
	}
	fmt.Fprintf(out, "Story saved to %s\n", path)
	return nil
}

// momentFlags binds the form fields shared by add and edit.
type momentFlags struct {
	id, title, desc, date, image, tags *string
	private                            *bool
}

func newMomentFlags(fs *flag.FlagSet) momentFlags {
	return momentFlags{
		id:      fs.String("id", "", "moment id"),
		title:   fs.String("title", "", "title"),
		desc:    fs.String("desc", "", "description"),
		date:    fs.String("date", "", "date (YYYY-MM-DD or RFC 3339), defaults to now"),
		image:   fs.String("image", "", "image URL"),
		tags:    fs.String("tags", "", "comma-separated tags"),
		private: fs.Bool("private", false, "keep the moment private"),
	}
}

func (f momentFlags) input() (service.MomentInput, error) {
	in := service.MomentInput{
		ID:          *f.id,
		Title:       *f.title,
		Description: *f.desc,
		ImageURL:    *f.image,
		Tags:        splitTags(*f.tags),
		IsPrivate:   *f.private,
	}
	if *f.date != "" {
		d, err := store.ParseTime(*f.date)
		if err != nil {
			return service.MomentInput{}, err
		}
		in.Date = d
	}
	return in, nil
}

func addView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	f := newMomentFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, err := f.input()
	if err != nil {
		return err
	}
	m, err := b.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Moment saved: %s (%s)\n", m.Title, m.ID)
	return nil
}

// editView starts from the stored moment and overrides only the flags given.
func editView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	f := newMomentFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *f.id == "" {
		return errors.New("-id is required")
	}

	cur, err := b.Get(ctx, *f.id)
	if err != nil {
		return err
	}
	in := service.MomentInput{
		Title:       cur.Title,
		Date:        cur.Date,
		Description: cur.Description,
		ImageURL:    cur.ImageURL,
		Tags:        cur.Tags,
		IsPrivate:   cur.IsPrivate,
	}

	var perr error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			in.Title = *f.title
		case "desc":
			in.Description = *f.desc
		case "image":
			in.ImageURL = *f.image
		case "tags":
			in.Tags = splitTags(*f.tags)
		case "private":
			in.IsPrivate = *f.private
		case "date":
			d, err := store.ParseTime(*f.date)
			if err != nil {
				perr = err
				return
			}
			in.Date = d
		}
	})
	if perr != nil {
		return perr
	}

	m, err := b.Update(ctx, cur.ID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Moment updated: %s (%s)\n", m.Title, m.ID)
	return nil
}

// anniversaryView shows the setting, or saves it when -date or -name is given.
func anniversaryView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("anniversary", flag.ContinueOnError)
	date := fs.String("date", "", "anniversary date (YYYY-MM-DD)")
	name := fs.String("name", "", "label, defaults to \""+model.DefaultAnniversaryName+"\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var v model.AnniversaryView
	var err error
	switch {
	case *date == "" && *name == "":
		v, err = b.Anniversary(ctx)
	default:
		var in service.AnniversaryInput
		in, err = anniversaryInput(ctx, b, *date, *name)
		if err != nil {
			return err
		}
		v, err = b.SaveAnniversary(ctx, in)
		if err == nil {
			fmt.Fprintln(out, "Anniversary saved")
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %s\n", v.Setting.Name, v.Setting.Date.Format(longDate))
	if !v.Saved {
		fmt.Fprintln(out, "(not set yet, showing the default)")
	}
	fmt.Fprintf(out, "Years together: %d\n", v.YearsElapsed)
	fmt.Fprintf(out, "Next: %s\n", v.NextOccurrence.Format(longDate))
	fmt.Fprintf(out, "Countdown: %s\n", formatCountdown(v.Countdown))
	return nil
}

// anniversaryInput fills a missing date from the saved setting so -name alone
// renames without moving the date.
func anniversaryInput(ctx context.Context, b client.Backend, date, name string) (service.AnniversaryInput, error) {
	in := service.AnniversaryInput{Name: name}
	if date != "" {
		d, err := store.ParseTime(date)
		if err != nil {
			return service.AnniversaryInput{}, err
		}
		in.Date = d
		return in, nil
	}
	cur, err := b.Anniversary(ctx)
	if err != nil {
		return service.AnniversaryInput{}, err
	}
	if !cur.Saved {
		return service.AnniversaryInput{}, errors.New("-date is required for the first save")
	}
	in.Date = cur.Setting.Date
	return in, nil
}

func countdownView(ctx context.Context, b client.Backend, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)
	target := fs.String("target", model.TargetAnniversary, "anniversary|home")
	interval := fs.Duration("interval", time.Second, "refresh interval")
	once := fs.Bool("once", false, "print one value and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *target != model.TargetAnniversary && *target != model.TargetHome {
		return fmt.Errorf("unknown target %q", *target)
	}

	err := b.WatchCountdown(ctx, *target, *interval, func(c model.Countdown) error {
		if *once {
			fmt.Fprintln(out, formatCountdown(c))
			return errStop
		}
		fmt.Fprintf(out, "\r%s ", formatCountdown(c))
		return nil
	})
	if !*once {
		fmt.Fprintln(out)
	}
	if errors.Is(err, errStop) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func whoamiView(ctx context.Context, b client.Backend, _ []string, out io.Writer) error {
	id, err := b.WhoAmI(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%s)\n", id.Email, id.ID)
	return nil
}

// --- formatting ---

func writeMoments(out io.Writer, ms []model.Moment) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, m := range ms {
		flags := ""
		if m.IsPrivate {
			flags = "private"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Date.Format(shortDate), m.Title, strings.Join(m.Tags, ", "), flags)
	}
	return tw.Flush()
}

func writeMoment(out io.Writer, m model.Moment) {
	fmt.Fprintf(out, "%s\n%s\n\n%s\n\n", m.Title, m.Date.Format(longDate), m.Description)
	if len(m.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(m.Tags, ", "))
	}
	fmt.Fprintf(out, "Image: %s\n", m.ImageURL)
	if m.IsPrivate {
		fmt.Fprintln(out, "Private")
	}
	fmt.Fprintf(out, "ID: %s\n", m.ID)
}

// storyCard is the shareable text rendition of a moment.
func storyCard(m model.Moment) string {
	var sb strings.Builder
	sb.WriteString(m.Title + "\n")
	sb.WriteString(m.Date.Format(longDate) + "\n\n")
	sb.WriteString(m.Description + "\n")
	if len(m.Tags) > 0 {
		sb.WriteString("\n#" + strings.Join(m.Tags, " #") + "\n")
	}
	return sb.String()
}

// nonWord matches runs of anything but letters and digits.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// storySlug lower-cases title and joins its words with single hyphens, so
// the result never holds a path separator or a dot. An empty title gives
// "moment".
func storySlug(title string) string {
	s := nonWord.ReplaceAllString(strings.ToLower(title), "-")
	if s == "" {
		return "moment"
	}
	return s
}

func formatCountdown(c model.Countdown) string {
	return fmt.Sprintf("%d days %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
