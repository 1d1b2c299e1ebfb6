package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/services"
)

var businessCommands = group{
	"list":   businessList,
	"show":   businessShow,
	"create": businessCreate,
	"update": businessUpdate,
	"delete": businessDelete,
}

func registerBusinessForm(fs *flag.FlagSet, f *domain.BusinessForm) {
	fs.StringVar(&f.NameEn, "name-en", "", "name in English")
	fs.StringVar(&f.NameAr, "name-ar", "", "name in Arabic")
	fs.StringVar(&f.LegalNameEn, "legal-name-en", "", "legal name in English")
	fs.StringVar(&f.LegalNameAr, "legal-name-ar", "", "legal name in Arabic")
	fs.StringVar(&f.TaxNumber, "tax-number", "", "tax number")
	fs.StringVar(&f.CommercialRegisterNumber, "crn", "", "commercial register number")
	fs.StringVar(&f.DomainURL, "domain-url", "", "domain URL")
	fs.StringVar(&f.Country, "country", "", "country")
	fs.StringVar(&f.City, "city", "", "city")
	fs.StringVar(&f.Address, "address", "", "address")
	fs.Func("category", "business category", func(s string) error {
		f.Category = domain.BusinessCategory(s)
		return nil
	})
	fs.IntVar(&f.MaxAdmins, "max-admins", 0, "maximum number of admins")
}

func businessList(ctx context.Context, a *app, args []string) error {
	fs := a.flags("business list")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Business.FetchBusinesses(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, b := range items {
		rows = append(rows, []string{
			idString(b.ID),
			b.DisplayName(a.arabic()),
			string(b.Category),
			strconv.Itoa(b.MaxAdmins),
			a.active(b.Active()),
			a.locale.FormatDate(b.CreatedAt),
		})
	}
	return a.table([]string{
		a.t("table.id", "ID"), a.t("table.name", "Name"), a.t("labels.category", "Category"),
		a.t("labels.maxAdmins", "Max admins"), a.t("table.status", "Status"), a.t("table.createdAt", "Created"),
	}, rows)
}

func businessShow(ctx context.Context, a *app, args []string) error {
	fs := a.flags("business show")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash business show <id>")
	if err != nil {
		return err
	}
	b, err := a.svc.Business.FetchBusiness(ctx, id)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, b)
	}
	return a.record([][2]string{
		{a.t("table.id", "ID"), idString(b.ID)},
		{a.t("labels.nameEn", "Name (English)"), b.NameEn},
		{a.t("labels.nameAr", "Name (Arabic)"), b.NameAr},
		{a.t("labels.legalNameEn", "Legal name (English)"), b.LegalNameEn},
		{a.t("labels.legalNameAr", "Legal name (Arabic)"), b.LegalNameAr},
		{a.t("labels.taxNumber", "Tax number"), b.TaxNumber},
		{a.t("labels.commercialRegisterNumber", "Commercial register number"), b.CommercialRegisterNumber},
		{a.t("labels.domainUrl", "Domain URL"), b.DomainURL},
		{a.t("labels.category", "Category"), string(b.Category)},
		{a.t("labels.maxAdmins", "Max admins"), strconv.Itoa(b.MaxAdmins)},
		{a.t("table.status", "Status"), a.active(b.Active())},
		{a.t("table.createdAt", "Created"), a.locale.FormatDate(b.CreatedAt)},
	})
}

// readDraft decodes a wizard draft from path, "-" meaning stdin.
func (a *app) readDraft(path string) (services.BusinessDraft, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(a.in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return services.BusinessDraft{}, fmt.Errorf("failed to read draft: %w", err)
	}
	var d services.BusinessDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return services.BusinessDraft{}, fmt.Errorf("failed to parse draft: %w", err)
	}
	return d, nil
}

func businessCreate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("business create")
	file := fs.String("f", "", "JSON draft with business, clients, admins and payments (- for stdin)")
	var form domain.BusinessForm
	registerBusinessForm(fs, &form)
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := services.BusinessDraft{Business: form}
	if *file != "" {
		d, err := a.readDraft(*file)
		if err != nil {
			return err
		}
		draft = d
	}
	return a.runBusinessWizard(ctx, services.NewBusinessWizard(a.svc, a.locator), draft)
}

func (a *app) printSteps(w *services.BusinessWizard) {
	labels := map[services.WizardStep]string{
		services.StepBusinessInfo: a.t("wizard.steps.businessInfo", "Business info"),
		services.StepClients:      a.t("wizard.steps.clients", "Clients"),
		services.StepAdmins:       a.t("wizard.steps.admins", "Admins"),
		services.StepPayments:     a.t("wizard.steps.payments", "Payments"),
	}
	for _, s := range w.Steps() {
		mark := " "
		switch {
		case s.Completed:
			mark = "x"
		case s.Active:
			mark = ">"
		}
		fmt.Fprintf(a.out, "[%s] %d. %s\n", mark, s.Number, labels[s.Number])
	}
}

func (a *app) runBusinessWizard(ctx context.Context, w *services.BusinessWizard, draft services.BusinessDraft) error {
	a.printSteps(w)
	if err := w.SubmitBusinessInfo(ctx, draft.Business); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (id %d)\n", a.t("messages.businessCreated", "Business created successfully"), w.PinnedID())

	for _, c := range draft.Clients {
		if err := w.SetClientRow(w.AddClientRow(), c); err != nil {
			return err
		}
	}
	if err := w.Next(ctx); err != nil {
		return err
	}
	a.printSteps(w)

	for _, ad := range draft.Admins {
		if err := w.SetAdminRow(w.AddAdminRow(), ad); err != nil {
			return err
		}
	}
	capacity := w.AdminCapacity()
	fmt.Fprintf(a.out, "Admins: %d existing, %d pending, limit %d, remaining %d\n",
		capacity.Current, capacity.Pending, capacity.Max, capacity.Remaining)
	for i, row := range capacity.Rows {
		if row.Warning {
			fmt.Fprintf(a.out, "  admin row %d exceeds the limit: %s\n", i+1, a.t("messages.adminLimitReached", ""))
		}
	}
	if err := w.Next(ctx); err != nil {
		return err
	}
	a.printSteps(w)

	for _, p := range draft.Payments {
		if err := w.SetPaymentRow(w.AddPaymentRow(), p); err != nil {
			return err
		}
	}
	if err := w.Submit(ctx); err != nil {
		return err
	}

	res, _ := w.Result()
	fmt.Fprintf(a.out, "%s: business %d, %d clients, %d admins, %d payments\n",
		a.t("messages.saveSuccess", "Saved successfully"), res.BusinessID, res.Clients, res.Admins, res.Payments)
	return nil
}

func businessUpdate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("business update")
	var form domain.BusinessForm
	registerBusinessForm(fs, &form)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash business update [flags] <id>")
	if err != nil {
		return err
	}
	b, err := a.svc.Business.FetchBusiness(ctx, id)
	if err != nil {
		return err
	}

	// only the flags given are sent
	w := services.NewBusinessEditWizard(a.svc, b)
	if err := w.SubmitBusinessInfo(ctx, form); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

func businessDelete(ctx context.Context, a *app, args []string) error {
	fs := a.flags("business delete")
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash business delete [-yes] <id>")
	if err != nil {
		return err
	}
	if !a.deleteGuard(*yes, "business "+idString(id)) {
		return nil
	}
	if err := a.svc.Business.DeleteBusiness(ctx, id); err != nil {
		return err
	}
	a.done("messages.deleteSuccess", "Deleted successfully")
	return nil
}
