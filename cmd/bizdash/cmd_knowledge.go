package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/services"
)

var knowledgeCommands = group{
	"questions":     knowledgeQuestions,
	"answers":       knowledgeAnswers,
	"documents":     knowledgeDocuments,
	"upload":        knowledgeUpload,
	"answer-update": knowledgeAnswerUpdate,
	"answer-delete": deleteCommand("knowledge answer", func(ctx context.Context, a *app, id domain.ID) error {
		return a.svc.Knowledge.DeleteAnswer(ctx, id)
	}),
	"fill": knowledgeFill,
}

func (a *app) arabic() bool { return a.locale.Locale().Dir() == "rtl" }

func (a *app) inputTypeLabel(t domain.InputType) string {
	return a.t("knowledge."+string(t), string(t))
}

func knowledgeQuestions(ctx context.Context, a *app, args []string) error {
	fs := a.flags("knowledge questions")
	var lf listFlags
	lf.register(fs)
	inputType := fs.String("type", "", "filter by input type: text|textarea|boolean")
	if err := fs.Parse(args); err != nil {
		return err
	}
	params := lf.params()
	if *inputType != "" {
		params.Extra = map[string]string{"input_type": *inputType}
	}
	items, err := a.svc.Knowledge.FetchQuestions(ctx, params)
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, q := range items {
		required := a.t("knowledge.optional", "Optional")
		if q.Required {
			required = a.t("knowledge.required", "Required")
		}
		rows = append(rows, []string{
			idString(q.ID), strconv.Itoa(q.OrderIndex), a.inputTypeLabel(q.InputType), required, q.Label(a.arabic()),
		})
	}
	return a.table([]string{a.t("table.id", "ID"), "#", "Type", "", a.t("table.question", "Question")}, rows)
}

func knowledgeAnswers(ctx context.Context, a *app, args []string) error {
	fs := a.flags("knowledge answers")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Knowledge.FetchAnswers(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, ans := range items {
		rows = append(rows, []string{idString(ans.ID), idString(ans.QuestionID), idString(ans.BusinessID), a.answerValue(ans)})
	}
	return a.table([]string{a.t("table.id", "ID"), a.t("table.question", "Question"), a.t("table.business", "Business"), a.t("table.answer", "Answer")}, rows)
}

func (a *app) answerValue(ans domain.KnowledgeAnswer) string {
	if ans.AnswerBoolean != nil {
		if *ans.AnswerBoolean {
			return a.t("labels.yes", "Yes")
		}
		return a.t("labels.no", "No")
	}
	return ans.Value(domain.InputText)
}

func knowledgeDocuments(ctx context.Context, a *app, args []string) error {
	fs := a.flags("knowledge documents")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.svc.Knowledge.FetchDocuments(ctx, lf.params())
	if err != nil {
		return err
	}
	if lf.asJSON {
		return writeJSON(a.out, items)
	}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, []string{
			idString(d.ID), d.Title, idString(d.BusinessID), d.FileType,
			a.locale.FormatNumber(float64(d.FileSizeBytes)), string(d.Status), a.locale.FormatDate(d.CreatedAt),
		})
	}
	return a.table([]string{
		a.t("table.id", "ID"), a.t("table.file", "File"), a.t("table.business", "Business"), "Type", "Bytes",
		a.t("table.status", "Status"), a.t("table.createdAt", "Created"),
	}, rows)
}

func readUploads(paths []string) ([]domain.UploadFile, error) {
	files := make([]domain.UploadFile, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		files = append(files, domain.UploadFile{Name: filepath.Base(p), Content: content})
	}
	return files, nil
}

func knowledgeUpload(ctx context.Context, a *app, args []string) error {
	fs := a.flags("knowledge upload")
	var businessID domain.ID
	businessFlag(fs, &businessID)
	if err := fs.Parse(args); err != nil {
		return err
	}
	files, err := readUploads(fs.Args())
	if err != nil {
		return err
	}
	docs, err := a.svc.Knowledge.UploadDocuments(ctx, businessID, files)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %d %s\n", a.t("messages.saveSuccess", "Saved successfully"), len(docs), a.t("knowledge.documents", "Documents"))
	return nil
}

func knowledgeAnswerUpdate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("knowledge answer-update")
	var patch domain.AnswerPatch
	fs.Func("text", "new answer text", func(s string) error {
		patch.Text = &s
		return nil
	})
	fs.Func("bool", "new boolean answer", func(s string) error {
		v, err := strconv.ParseBool(s)
		patch.Boolean = &v
		return err
	})
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := idArg(fs, "bizdash knowledge answer-update -text <text> | -bool <bool> <id>")
	if err != nil {
		return err
	}
	if patch.Text == nil && patch.Boolean == nil {
		return usageError{usage: "bizdash knowledge answer-update -text <text> | -bool <bool> <id>"}
	}
	if _, err := a.svc.Knowledge.UpdateAnswer(ctx, id, patch); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

// knowledgeFill runs the knowledge wizard: answers come from a JSON object of
// question id to value, or are prompted one by one.
func knowledgeFill(ctx context.Context, a *app, args []string) error {
	fs := a.flags("knowledge fill")
	var businessID domain.ID
	businessFlag(fs, &businessID)
	answersFile := fs.String("answers", "", `JSON object of question id to answer, e.g. {"3":"yes"}`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if businessID == 0 {
		return usageError{usage: "bizdash knowledge fill -business <id> [-answers file.json] <files...>"}
	}

	w := services.NewKnowledgeWizard(a.svc.Knowledge, businessID)
	questions, err := w.LoadQuestions(ctx)
	if err != nil {
		return err
	}

	if *answersFile != "" {
		values, err := readAnswerFile(*answersFile)
		if err != nil {
			return err
		}
		for id, v := range values {
			w.SetAnswer(id, v)
		}
	} else {
		existing := w.Answers()
		for _, q := range questions {
			label := fmt.Sprintf("%s [%s]", q.Label(a.arabic()), a.inputTypeLabel(q.InputType))
			if cur := existing[q.ID]; cur != "" {
				label += " (" + cur + ")"
			}
			if v := a.prompt(label); v != "" {
				w.SetAnswer(q.ID, v)
			}
		}
	}
	if err := w.Next(); err != nil {
		return err
	}

	files, err := readUploads(fs.Args())
	if err != nil {
		return err
	}
	for _, f := range files {
		w.AddFile(f)
	}
	if err := w.Submit(ctx); err != nil {
		return err
	}
	a.done("messages.saveSuccess", "Saved successfully")
	return nil
}

func readAnswerFile(path string) (map[domain.ID]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	var byKey map[string]any
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	out := make(map[domain.ID]string, len(byKey))
	for k, v := range byKey {
		id, err := parseID(k)
		if err != nil {
			return nil, err
		}
		switch val := v.(type) {
		case string:
			out[id] = strings.TrimSpace(val)
		case bool:
			out[id] = strconv.FormatBool(val)
		case float64:
			out[id] = strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return out, nil
}
