package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/i18n"
)

// passwordEnv lets scripts log in without a prompt or a flag in the shell history.
const passwordEnv = "BIZDASH_PASSWORD"

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := a.flags("login")
	username := fs.String("u", "", "superuser username")
	password := fs.String("p", "", "password (or "+passwordEnv+")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		*username = a.prompt(a.t("labels.login", "Username"))
	}
	if *password == "" {
		*password = os.Getenv(passwordEnv)
	}
	if *password == "" {
		*password = a.prompt(a.t("labels.password", "Password"))
	}

	if err := a.svc.Auth.Login(ctx, *username, *password); err != nil {
		return err
	}
	a.done("messages.loginSuccess", "Logged in successfully")
	return nil
}

func cmdLogout(ctx context.Context, a *app, args []string) error {
	if err := a.flags("logout").Parse(args); err != nil {
		return err
	}
	err := a.svc.Auth.Logout(ctx)
	// local tokens are gone either way
	a.done("messages.logoutSuccess", "Logged out")
	return err
}

func cmdWhoami(ctx context.Context, a *app, args []string) error {
	fs := a.flags("whoami")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	session, err := a.svc.Auth.Session(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			a.done("messages.notLoggedIn", "You are not logged in")
			return nil
		}
		return err
	}
	if *asJSON {
		return writeJSON(a.out, session)
	}

	expires := "-"
	if !session.ExpiresAt.IsZero() {
		expires = a.locale.FormatDate(session.ExpiresAt) + " " + session.ExpiresAt.Local().Format("15:04")
	}
	if session.Expired(time.Now()) {
		expires += " (expired)"
	}
	return a.record([][2]string{
		{"User", session.UserID},
		{"Expires", expires},
	})
}

func cmdStats(ctx context.Context, a *app, args []string) error {
	fs := a.flags("stats")
	asJSON := fs.Bool("json", false, "print JSON")
	currency := fs.String("currency", "USD", "ISO 4217 currency of payment amounts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	stats, err := a.svc.Dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, stats)
	}
	n := func(v int) string { return a.locale.FormatNumber(float64(v)) }
	return a.record([][2]string{
		{a.t("dashboard.totalBusinesses", "Total businesses"), n(stats.TotalBusinesses)},
		{a.t("dashboard.activeBusinesses", "Active businesses"), n(stats.ActiveBusinesses)},
		{a.t("dashboard.newBusinesses", "New businesses (30 days)"), n(stats.NewBusinesses)},
		{a.t("dashboard.totalClients", "Total clients"), n(stats.TotalClients)},
		{a.t("dashboard.activeClients", "Active clients"), n(stats.ActiveClients)},
		{a.t("dashboard.newClients", "New clients (30 days)"), n(stats.NewClients)},
		{a.t("dashboard.totalPayments", "Total payments"), n(stats.TotalPayments)},
		{a.t("dashboard.newPayments", "New payments (30 days)"), n(stats.NewPayments)},
		{a.t("dashboard.totalAmount", "Total amount"), i18n.FormatCurrency(a.locale.Locale(), stats.TotalPaymentsAmount, *currency)},
		{a.t("dashboard.totalAdmins", "Total admins"), n(stats.TotalAdmins)},
	})
}

func cmdActivities(ctx context.Context, a *app, args []string) error {
	fs := a.flags("activities")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Dashboard.RecentActivities(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{a.locale.FormatDate(it.Date), string(it.Type), it.Title, it.Description})
	}
	return a.table([]string{a.t("table.date", "Date"), "Type", a.t("table.name", "Name"), "Description"}, rows)
}

var localeCommands = group{
	"get": func(_ context.Context, a *app, args []string) error {
		if err := a.flags("locale get").Parse(args); err != nil {
			return err
		}
		l := a.locale.Locale()
		fmt.Fprintf(a.out, "%s (%s, %s)\n", l, l.Dir(), l.FontClass())
		return nil
	},
	"set": func(ctx context.Context, a *app, args []string) error {
		fs := a.flags("locale set")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return usageError{usage: "bizdash locale set en|ar"}
		}
		l, ok := i18n.Parse(fs.Arg(0))
		if !ok {
			return apperrors.NewValidationError("locale", "must be one of en, ar")
		}
		_, err := a.locale.SetLocale(ctx, l)
		return err
	},
}
