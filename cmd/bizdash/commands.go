package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

type handler func(ctx context.Context, a *app, args []string) error

// group is a command with subcommands, e.g. "business list".
type group map[string]handler

var commands = map[string]handler{
	"login":      cmdLogin,
	"logout":     cmdLogout,
	"whoami":     cmdWhoami,
	"stats":      cmdStats,
	"activities": cmdActivities,
	"business":   businessCommands.run("business"),
	"client":     clientCommands.run("client"),
	"admin":      adminCommands.run("admin"),
	"payment":    paymentCommands.run("payment"),
	"knowledge":  knowledgeCommands.run("knowledge"),
	"locale":     localeCommands.run("locale"),
}

func (g group) run(name string) handler {
	return func(ctx context.Context, a *app, args []string) error {
		if len(args) == 0 {
			return usageError{usage: "bizdash " + name + " " + g.names()}
		}
		h, ok := g[args[0]]
		if !ok {
			return usageError{usage: "bizdash " + name + " " + g.names()}
		}
		return h(ctx, a, args[1:])
	}
}

func (g group) names() string {
	names := make([]string, 0, len(g))
	for n := range g {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func topLevelUsage() string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return "bizdash <" + strings.Join(names, "|") + "> [args]"
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(a.out, "usage: "+topLevelUsage())
		return nil
	}
	h, ok := commands[args[0]]
	if !ok {
		return usageError{usage: topLevelUsage()}
	}
	err := h(ctx, a, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// flags builds a subcommand flag set writing its help to stderr.
func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// listFlags registers the common list filters.
type listFlags struct {
	business int64
	search   string
	ordering string
	page     int
	asJSON   bool
}

func (l *listFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&l.business, "business", 0, "filter by business id")
	fs.StringVar(&l.search, "search", "", "free text search")
	fs.StringVar(&l.ordering, "ordering", "", "sort field, prefix with - for descending")
	fs.IntVar(&l.page, "page", 0, "page number")
	fs.BoolVar(&l.asJSON, "json", false, "print JSON")
}

func (l listFlags) params() dto.ListParams {
	return dto.ListParams{Business: l.business, Search: l.search, Ordering: l.ordering, Page: l.page}
}

func parseID(s string) (domain.ID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return domain.ID(id), nil
}

// idArg parses the single positional id of fs.
func idArg(fs *flag.FlagSet, usage string) (domain.ID, error) {
	if fs.NArg() != 1 {
		return 0, usageError{usage: usage}
	}
	return parseID(fs.Arg(0))
}

// confirm asks a y/N question on the terminal. Anything but y or yes declines.
func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// deleteGuard asks before a delete unless yes is set.
func (a *app) deleteGuard(yes bool, what string) bool {
	if yes {
		return true
	}
	if a.confirm(a.t("messages.confirmDelete", "Are you sure you want to delete this item?") + " (" + what + ")") {
		return true
	}
	fmt.Fprintln(a.out, a.t("messages.deleteCancelled", "Delete cancelled"))
	return false
}

// prompt reads one line, printing label first.
func (a *app) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table prints header and rows aligned by tabwriter.
func (a *app) table(header []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, a.t("messages.noData", "No data found"))
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// record prints label/value pairs of one entity.
func (a *app) record(pairs [][2]string) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s:\t%s\n", p[0], p[1])
	}
	return tw.Flush()
}

func (a *app) done(key, fallback string) {
	fmt.Fprintln(a.out, a.t(key, fallback))
}

func idString(id domain.ID) string { return strconv.FormatInt(int64(id), 10) }

func (a *app) active(ok bool) string {
	if ok {
		return a.t("labels.active", "Active")
	}
	return a.t("labels.inactive", "Inactive")
}
