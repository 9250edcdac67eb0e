package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spendlog/spendlog/internal/category"
	"github.com/spendlog/spendlog/internal/model"
)

// errInputClosed is returned when stdin ends while a prompt is waiting.
var errInputClosed = errors.New("input closed")

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints prompt and returns the next input line, trimmed.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ask re-prompts until parse accepts the input.
func ask[T any](p *prompter, prompt, retry string, parse func(string) (T, error)) (T, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(s)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, retry)
	}
}

// chooseCategory offers the session's suggestions and accepts any non-empty
// name, adding new ones to the suggestions for the rest of the session.
func (p *prompter) chooseCategory(sugg *category.Suggestions) (string, error) {
	fmt.Fprintln(p.out, "\n--- Categories ---")
	for {
		fmt.Fprintln(p.out, "Available categories:", sugg.String())
		name, err := p.line("Enter a category (or type a new one to add it): ")
		if err != nil {
			return "", err
		}
		if name == "" {
			fmt.Fprintln(p.out, "Category cannot be empty. Please try again.")
			continue
		}
		if sugg.Add(name) {
			fmt.Fprintf(p.out, "New category '%s' added!\n", name)
		}
		return name, nil
	}
}

// expenseInput holds raw values already supplied (e.g. from flags); empty
// fields are prompted for.
type expenseInput struct {
	date, amount, category, description string
}

// collectExpense validates supplied fields and prompts for the rest. A bad
// supplied value fails immediately; a bad typed value is asked again.
func (p *prompter) collectExpense(in expenseInput, sugg *category.Suggestions) (model.Expense, error) {
	var e model.Expense
	var err error

	if in.date != "" {
		if e.Date, err = model.ParseDate(in.date); err != nil {
			return model.Expense{}, &model.FieldError{Field: "date", Err: err}
		}
	} else if e.Date, err = ask(p, "Enter date (YYYY-MM-DD): ", "Invalid date format. Please try again.", model.ParseDate); err != nil {
		return model.Expense{}, err
	}

	if in.amount != "" {
		if e.Amount, err = model.ParseAmount(in.amount); err != nil {
			return model.Expense{}, &model.FieldError{Field: "amount", Err: err}
		}
	} else if e.Amount, err = ask(p, "Enter amount spent: ", "Invalid amount. Please enter a numeric value.", model.ParseAmount); err != nil {
		return model.Expense{}, err
	}

	if in.category != "" {
		if e.Category, err = model.ParseText(in.category); err != nil {
			return model.Expense{}, &model.FieldError{Field: "category", Err: err}
		}
	} else if e.Category, err = p.chooseCategory(sugg); err != nil {
		return model.Expense{}, err
	}

	if in.description != "" {
		if e.Description, err = model.ParseText(in.description); err != nil {
			return model.Expense{}, &model.FieldError{Field: "description", Err: err}
		}
	} else if e.Description, err = ask(p, "Enter a brief description: ", "Description cannot be empty.", model.ParseText); err != nil {
		return model.Expense{}, err
	}

	return e, nil
}
