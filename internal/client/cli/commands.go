package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"qanda-service/internal/server/models"
)

func (a *App) register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	if err := a.api.Register(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return
	}

	fmt.Fprintln(a.out, "Account created, you can log in now")
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}

	fmt.Fprintln(a.out, "Login successful")
}

func (a *App) listQuestions(ctx context.Context, args []string) {
	var limit, offset int64
	if len(args) >= 1 {
		var err error
		limit, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: list [limit offset]")
			return
		}
		if len(args) >= 2 {
			offset, err = strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Fprintln(a.out, "Usage: list [limit offset]")
				return
			}
		}
	}

	questions, err := a.api.ListQuestions(ctx, limit, offset)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	if len(questions) == 0 {
		fmt.Fprintln(a.out, "No questions yet")
		return
	}
	for _, q := range questions {
		line := fmt.Sprintf("#%d %s", q.ID, q.Title)
		if len(q.Tags) > 0 {
			line += " [" + strings.Join(q.Tags, ", ") + "]"
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) readQuestionForm() (models.NewQuestion, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return models.NewQuestion{}, err
	}

	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return models.NewQuestion{}, err
	}

	rawTags, err := GetSimpleText(a.reader, "Tags (comma-separated, optional)", a.out)
	if err != nil {
		return models.NewQuestion{}, err
	}

	var tags []string
	for _, tag := range strings.Split(rawTags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return models.NewQuestion{Title: title, Content: content, Tags: tags}, nil
}

func (a *App) askQuestion(ctx context.Context) {
	nq, err := a.readQuestionForm()
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	q, err := a.api.AskQuestion(ctx, nq)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	fmt.Fprintf(a.out, "Question #%d created\n", q.ID)
}

func parseIDArg(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (a *App) updateQuestion(ctx context.Context, args []string) {
	id, ok := parseIDArg(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: update <id>")
		return
	}

	nq, err := a.readQuestionForm()
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	if _, err := a.api.UpdateQuestion(ctx, id, nq); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	fmt.Fprintf(a.out, "Question #%d updated\n", id)
}

func (a *App) deleteQuestion(ctx context.Context, args []string) {
	id, ok := parseIDArg(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return
	}

	if err := a.api.DeleteQuestion(ctx, id); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	fmt.Fprintf(a.out, "Question #%d deleted\n", id)
}

func (a *App) addAnswer(ctx context.Context, args []string) {
	id, ok := parseIDArg(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: answer <question-id>")
		return
	}

	content, err := GetMultiline(a.reader, "Answer", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	answer, err := a.api.AddAnswer(ctx, models.NewAnswer{Content: content, QuestionID: id})
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	fmt.Fprintf(a.out, "Answer #%d posted\n", answer.ID)
}

func (a *App) listAnswers(ctx context.Context, args []string) {
	id, ok := parseIDArg(args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: answers <question-id>")
		return
	}

	answers, err := a.api.ListAnswers(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}

	if len(answers) == 0 {
		fmt.Fprintln(a.out, "No answers yet")
		return
	}
	for _, ans := range answers {
		fmt.Fprintf(a.out, "#%d %s\n", ans.ID, ans.Content)
	}
}
