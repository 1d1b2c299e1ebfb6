package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/services"
	"github.com/shopspring/decimal"
)

// deleteCommand builds the confirm-then-delete subcommand shared by every entity.
func deleteCommand(entity string, del func(ctx context.Context, a *app, id domain.ID) error) handler {
	return func(ctx context.Context, a *app, args []string) error {
		fs := a.flags(entity + " delete")
		yes := fs.Bool("yes", false, "skip confirmation")
		if err := fs.Parse(args); err != nil {
			return err
		}
		id, err := idArg(fs, "bizdash "+entity+" delete [-yes] <id>")
		if err != nil {
			return err
		}
		if !a.deleteGuard(*yes, entity+" "+idString(id)) {
			return nil
		}
		if err := del(ctx, a, id); err != nil {
			return err
		}
		a.done("messages.deleteSuccess", "Deleted successfully")
		return nil
	}
}

// --- clients ---

var clientCommands = group{
	"list":   clientList,
	"show":   clientShow,
	"create": clientCreate,
	"update": clientUpdate,
	"delete": deleteCommand("client", func(ctx context.Context, a *app, id domain.ID) error {
		return a.svc.Client.DeleteClient(ctx, id)
	}),
}

func (a *app) clientRows(items []domain.Client) [][]string {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			idString(c.ID), c.Name, c.Email, c.Phone, idString(c.BusinessID),
			a.active(c.Active()), a.locale.FormatDate(c.CreatedAt),
		})
	}
	return rows
}

func (a *app) clientHeader() []string {
	return []string{
		a.t("table.id", "ID"), a.t("table.name", "Name"), a.t("table.email", "Email"), a.t("table.phone", "Phone"),
		a.t("table.business", "Business"), a.t("table.status", "Status"), a.t("table.createdAt", "Created"),
	}
}

func clientList(ctx context.Context, a *app, args []string) error {
	fs := a.flags("client list")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Client.FetchClients(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	return a.table(a.clientHeader(), a.clientRows(items))
}

func clientShow(ctx context.Context, a *app, args []string) error {
	fs := a.flags("client show")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash client show <id>")
	if err != nil {
		return err
	}
	c, err := a.svc.Client.FetchClient(ctx, id)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, c)
	}
	return a.table(a.clientHeader(), a.clientRows([]domain.Client{c}))
}

func clientCreate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("client create")
	var in domain.ClientInput
	businessFlag(fs, &in.BusinessID)
	fs.StringVar(&in.Name, "name", "", "client name")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Phone, "phone", "", "phone")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := a.svc.Client.CreateClient(ctx, in)
	if err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	if c.ID != 0 {
		return a.table(a.clientHeader(), a.clientRows([]domain.Client{c}))
	}
	return nil
}

func clientUpdate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("client update")
	var patch domain.ClientPatch
	fs.StringVar(&patch.Name, "name", "", "client name")
	fs.StringVar(&patch.Email, "email", "", "email")
	fs.StringVar(&patch.Phone, "phone", "", "phone")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash client update [flags] <id>")
	if err != nil {
		return err
	}
	if _, err := a.svc.Client.UpdateClient(ctx, id, patch); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

func businessFlag(fs *flag.FlagSet, id *domain.ID) {
	fs.Func("business", "owning business id", func(s string) error {
		v, err := parseID(s)
		*id = v
		return err
	})
}

// --- admins ---

var adminCommands = group{
	"list":   adminList,
	"create": adminCreate,
	"update": adminUpdate,
	"delete": deleteCommand("admin", func(ctx context.Context, a *app, id domain.ID) error {
		return a.svc.Admin.DeleteAdmin(ctx, id)
	}),
}

func adminList(ctx context.Context, a *app, args []string) error {
	fs := a.flags("admin list")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Admin.FetchAdmins(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, ad := range items {
		rows = append(rows, []string{
			idString(ad.ID), ad.FullName, ad.Email, idString(ad.BusinessID), a.active(ad.IsActive),
		})
	}
	return a.table([]string{
		a.t("table.id", "ID"), a.t("labels.fullName", "Full name"), a.t("table.email", "Email"),
		a.t("table.business", "Business"), a.t("table.status", "Status"),
	}, rows)
}

func adminCreate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("admin create")
	var in domain.AdminInput
	businessFlag(fs, &in.BusinessID)
	fs.StringVar(&in.FullName, "name", "", "full name")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "password", "", "initial password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if in.Password == "" {
		in.Password = a.prompt(a.t("labels.password", "Password"))
	}
	if in.BusinessID != 0 {
		if err := a.checkAdminCapacity(ctx, in.BusinessID); err != nil {
			return err
		}
	}
	if _, err := a.svc.Admin.CreateAdmin(ctx, in); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

// checkAdminCapacity refuses a create that the business limit cannot take.
func (a *app) checkAdminCapacity(ctx context.Context, businessID domain.ID) error {
	b, err := a.svc.Business.FetchBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	if _, err := a.svc.Admin.FetchAdmins(ctx, listFlags{business: int64(businessID)}.params()); err != nil {
		return err
	}
	limit := b.MaxAdmins
	if limit == 0 {
		limit = domain.DefaultMaxAdmins
	}
	capacity := domain.NewAdminCapacity(limit, a.svc.Admin.CountAdminsForBusiness(businessID), 1)
	if capacity.Rows[0].Disabled {
		return fmt.Errorf("%w: %d of %d admins exist", apperrors.ErrAdminCapacity, capacity.Current, capacity.Max)
	}
	return nil
}

func adminUpdate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("admin update")
	var patch domain.AdminPatch
	fs.StringVar(&patch.FullName, "name", "", "full name")
	fs.StringVar(&patch.Email, "email", "", "email")
	fs.StringVar(&patch.Password, "password", "", "new password")
	fs.Func("active", "true or false", func(s string) error {
		v, err := strconv.ParseBool(s)
		patch.IsActive = &v
		return err
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash admin update [flags] <id>")
	if err != nil {
		return err
	}
	patch.ID = id
	if _, err := a.svc.Admin.UpdateAdmin(ctx, patch); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

// --- payments ---

var paymentCommands = group{
	"list":   paymentList,
	"show":   paymentShow,
	"create": paymentCreate,
	"update": paymentUpdate,
	"delete": deleteCommand("payment", func(ctx context.Context, a *app, id domain.ID) error {
		return a.svc.Payment.DeletePayment(ctx, id)
	}),
}

func (a *app) paymentRows(items []domain.Payment) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			idString(p.ID), idString(p.BusinessID),
			a.formatAmount(p.AmountPaid),
			a.t("payment.methods."+string(p.PaymentMethod), string(p.PaymentMethod)),
			a.locale.FormatDate(p.PaymentDate.Time),
			p.Note,
		})
	}
	return rows
}

func (a *app) paymentHeader() []string {
	return []string{
		a.t("table.id", "ID"), a.t("table.business", "Business"), a.t("table.amount", "Amount"),
		a.t("table.method", "Method"), a.t("table.date", "Date"), a.t("labels.note", "Note"),
	}
}

func paymentList(ctx context.Context, a *app, args []string) error {
	fs := a.flags("payment list")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Payment.FetchPayments(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	return a.table(a.paymentHeader(), a.paymentRows(items))
}

func paymentShow(ctx context.Context, a *app, args []string) error {
	fs := a.flags("payment show")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash payment show <id>")
	if err != nil {
		return err
	}
	p, err := a.svc.Payment.FetchPayment(ctx, id)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, p)
	}
	return a.table(a.paymentHeader(), a.paymentRows([]domain.Payment{p}))
}

func paymentCreate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("payment create")
	var (
		businessID domain.ID
		draft      services.PaymentDraft
	)
	businessFlag(fs, &businessID)
	fs.StringVar(&draft.AmountPaid, "amount", "", "amount paid")
	fs.StringVar(&draft.PaymentMethod, "method", string(domain.PaymentCash), "cash|credit_card|bank_transfer|check|other")
	fs.StringVar(&draft.PaymentDate, "date", "", "payment date YYYY-MM-DD")
	fs.StringVar(&draft.Note, "note", "", "note")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, err := draft.Input(businessID)
	if err != nil {
		return err
	}
	if _, err := a.svc.Payment.CreatePayment(ctx, in); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

func paymentUpdate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("payment update")
	var patch domain.PaymentPatch
	fs.Func("amount", "amount paid", func(s string) error {
		d, err := decimal.NewFromString(s)
		patch.AmountPaid = &d
		return err
	})
	fs.Func("method", "cash|credit_card|bank_transfer|check|other", func(s string) error {
		patch.PaymentMethod = domain.PaymentMethod(s)
		return nil
	})
	fs.Func("date", "payment date YYYY-MM-DD", func(s string) error {
		d, err := domain.ParseDate(s)
		patch.PaymentDate = &d
		return err
	})
	fs.Func("note", "note", func(s string) error {
		patch.Note = &s
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash payment update [flags] <id>")
	if err != nil {
		return err
	}
	if _, err := a.svc.Payment.UpdatePayment(ctx, id, patch); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

func (a *app) formatAmount(d decimal.Decimal) string {
	return a.locale.FormatNumber(d.Round(2).InexactFloat64())
}
