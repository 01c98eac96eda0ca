package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"raijai/internal/blob"
	"raijai/internal/core"
	"raijai/internal/ledger"
	"raijai/internal/prefs"
	"raijai/internal/reports"
)

func dispatch(ctx context.Context, command string, args []string, l *ledger.Ledger, store blob.Store) error {
	switch command {
	case "login":
		return runLogin(ctx, args, l)
	case "logout":
		l.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "add":
		return runAdd(ctx, args, l)
	case "list":
		return runList(args, l)
	case "categories":
		for _, s := range core.SuggestedCategories() {
			fmt.Printf("%-12s %s\n", s.Name, s.Icon)
		}
		return nil
	case "edit":
		return runEdit(ctx, args, l)
	case "delete":
		return runDelete(ctx, args, l)
	case "clear":
		return runClear(ctx, l)
	case "summary":
		return runSummary(l)
	case "report":
		return runReport(l)
	case "months":
		return runMonths(l)
	case "profile":
		return runProfile(ctx, args, l)
	case "passwd":
		return runPasswd(ctx, args, l)
	case "prefs":
		return runPrefs(ctx, args, store)
	case "export":
		return runExport(args, l)
	case "import":
		return runImport(ctx, args, l)
	default:
		return fmt.Errorf("unknown command %q (try \"raijai help\")", command)
	}
}

func requireSession(l *ledger.Ledger) error {
	if !l.Active() {
		return fmt.Errorf("no active session, log in first")
	}
	return nil
}

func runLogin(ctx context.Context, args []string, l *ledger.Ledger) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	secret := fs.String("secret", "", "account secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !l.Login(ctx, *email, *secret) {
		return fmt.Errorf("invalid email or secret")
	}
	u := l.CurrentUser()
	fmt.Printf("welcome, %s\n", u.Name)
	return nil
}

// parseTransactionFlags reads the shared add/edit flag set into a
// validated transaction (identifier unset).
func parseTransactionFlags(name string, args []string) (core.Transaction, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	typ := fs.String("type", "expense", "income or expense")
	txName := fs.String("name", "", "display name")
	amount := fs.String("amount", "", "amount, e.g. 120.50")
	category := fs.String("category", "", "category name")
	date := fs.String("date", "", "date YYYY-MM-DD, default today")
	note := fs.String("note", "", "optional note")
	if err := fs.Parse(args); err != nil {
		return core.Transaction{}, err
	}

	cents, err := core.ParseDecimalToCents(*amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", *amount, err)
	}
	d := core.DateOf(time.Now())
	if *date != "" {
		if d, err = core.ParseDate(*date); err != nil {
			return core.Transaction{}, fmt.Errorf("date %q: %w", *date, err)
		}
	}
	tx := core.Transaction{
		Type:     core.TransactionType(*typ),
		Category: *category,
		Icon:     core.IconForCategory(*category),
		Name:     *txName,
		Amount:   core.Money{Cents: cents},
		Date:     d,
		Note:     *note,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

func runAdd(ctx context.Context, args []string, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	tx, err := parseTransactionFlags("add", args)
	if err != nil {
		return err
	}
	added, err := l.AddTransaction(ctx, tx)
	if err != nil {
		return err
	}
	fmt.Printf("added %d: %s %s %s\n", added.ID, added.Type, added.Name, added.Amount)
	return nil
}

func runList(args []string, l *ledger.Ledger) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	typ := fs.String("type", "all", "all, income or expense")
	query := fs.String("q", "", "search name and category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filtered := core.Filter(l.Transactions(), core.TypeFilter(*typ), *query)
	renderDayGroups(os.Stdout, core.GroupByDay(filtered))
	return nil
}

func runEdit(ctx context.Context, args []string, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	id, rest, err := splitIDFlag("edit", args)
	if err != nil {
		return err
	}
	tx, err := parseTransactionFlags("edit", rest)
	if err != nil {
		return err
	}
	if err := l.UpdateTransaction(ctx, id, tx); err != nil {
		return err
	}
	fmt.Printf("updated %d\n", id)
	return nil
}

func runDelete(ctx context.Context, args []string, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := l.DeleteTransaction(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("deleted %d\n", *id)
	return nil
}

func runClear(ctx context.Context, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	if err := l.ClearAllData(ctx); err != nil {
		return err
	}
	fmt.Println("all transactions cleared")
	return nil
}

func runSummary(l *ledger.Ledger) error {
	txs := l.Transactions()
	renderSummary(os.Stdout, txs, core.DateOf(time.Now()))
	return nil
}

func runReport(l *ledger.Ledger) error {
	svc := reports.NewService()
	renderCategoryReport(os.Stdout, svc.ByCategory(l.Transactions()))
	return nil
}

func runMonths(l *ledger.Ledger) error {
	svc := reports.NewService()
	renderMonthlyReport(os.Stdout, svc.ByMonth(l.Transactions()))
	return nil
}

func runProfile(ctx context.Context, args []string, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	u := l.CurrentUser()
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	name := fs.String("name", u.Name, "display name")
	avatar := fs.String("avatar", u.AvatarURL, "avatar url")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name != u.Name || *avatar != u.AvatarURL {
		if err := l.UpdateProfile(ctx, *name, *avatar); err != nil {
			return err
		}
		u = l.CurrentUser()
	}
	fmt.Printf("name:   %s\nemail:  %s\navatar: %s\n", u.Name, u.Email, u.AvatarURL)
	return nil
}

func runPasswd(ctx context.Context, args []string, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	fs := flag.NewFlagSet("passwd", flag.ContinueOnError)
	current := fs.String("current", "", "current secret")
	newSecret := fs.String("new", "", "new secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !l.ChangePassword(ctx, *current, *newSecret) {
		return fmt.Errorf("current secret does not match")
	}
	fmt.Println("password changed")
	return nil
}

func runPrefs(ctx context.Context, args []string, store blob.Store) error {
	fs := flag.NewFlagSet("prefs", flag.ContinueOnError)
	dark := fs.String("dark", "", "true or false")
	bg := fs.String("bg", "", "background theme string")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p := prefs.New(store)

	if *dark != "" {
		if err := p.SetDarkMode(ctx, *dark == "true"); err != nil {
			return err
		}
	}
	if *bg != "" {
		if err := p.SetBackground(ctx, *bg); err != nil {
			return err
		}
	}

	on, err := p.DarkMode(ctx)
	if err != nil {
		return err
	}
	theme, err := p.Background(ctx)
	if err != nil {
		return err
	}
	if theme == "" {
		theme = "(default)"
	}
	fmt.Printf("dark mode:  %v\nbackground: %s\n", on, theme)
	return nil
}

func runExport(args []string, l *ledger.Ledger) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "output file, default stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := l.Export()
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(*out, data, 0644)
}

func runImport(ctx context.Context, args []string, l *ledger.Ledger) error {
	if err := requireSession(l); err != nil {
		return err
	}
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	in := fs.String("i", "", "input file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("import requires -i <file>")
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	if err := l.Import(ctx, data); err != nil {
		return err
	}
	fmt.Printf("imported %d transactions\n", len(l.Transactions()))
	return nil
}

// splitIDFlag peels the leading -id flag off an edit invocation so the
// remaining args can reuse the add flag set.
func splitIDFlag(name string, args []string) (int64, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	id := fs.Int64("id", 0, "transaction id")
	typ := fs.String("type", "expense", "")
	txName := fs.String("name", "", "")
	amount := fs.String("amount", "", "")
	category := fs.String("category", "", "")
	date := fs.String("date", "", "")
	note := fs.String("note", "", "")
	if err := fs.Parse(args); err != nil {
		return 0, nil, err
	}
	if *id == 0 {
		return 0, nil, fmt.Errorf("edit requires -id <id>")
	}
	rest := []string{"-type", *typ, "-name", *txName, "-amount", *amount, "-category", *category, "-note", *note}
	if *date != "" {
		rest = append(rest, "-date", *date)
	}
	return *id, rest, nil
}
