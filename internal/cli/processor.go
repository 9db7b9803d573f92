package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/trace"
)

// Ledger is what the dispatcher drives.
type Ledger interface {
	AddExpense(ctx context.Context, dateText string, amount core.Money, category string) error
	AddIncome(ctx context.Context, dateText string, amount core.Money) error
	ListTransactions(ctx context.Context) error
	GenerateMonthlyReport(ctx context.Context, year, month int) error
}

const helpText = `Commands:
  AddExpense <YYYY-MM-DD> <amount> <category>
  AddIncome <YYYY-MM-DD> <amount>
  ListTransactions
  GenerateMonthlyReport <year> <month>
  Help
  exit
`

// Processor turns one command line into a ledger call.
type Processor struct {
	ledger Ledger
	out    io.Writer
}

func NewProcessor(ledger Ledger, out io.Writer) *Processor {
	return &Processor{ledger: ledger, out: out}
}

// ProcessCommand runs a line and prints any failure as "Error: <message>".
// Failures never stop the caller's loop.
func (p *Processor) ProcessCommand(ctx context.Context, input string) {
	ctx = trace.WithCommandID(ctx)
	logger := applog.FromContext(ctx).With(applog.FieldCommandID, trace.CommandID(ctx))

	start := time.Now()
	err := p.Dispatch(ctx, input)
	logger.DebugContext(ctx, "Command completed",
		applog.FieldCommand, input,
		applog.FieldDuration, time.Since(start).Milliseconds(),
		applog.FieldSuccess, err == nil)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, errUsage):
		logger.DebugContext(ctx, "Command rejected",
			applog.FieldOperation, applog.OpParse,
			applog.FieldCommand, input,
			applog.FieldError, err)
	case core.IsValidation(err):
		logger.DebugContext(ctx, "Command rejected",
			applog.FieldOperation, applog.OpValidate,
			applog.FieldCommand, input,
			applog.FieldError, err,
			applog.FieldErrorType, applog.ErrorTypeValidation)
	default:
		logger.ErrorContext(ctx, "Command failed",
			applog.FieldCommand, input,
			applog.FieldError, err,
			applog.FieldErrorType, applog.ErrorTypeInternal)
	}
	fmt.Fprintf(p.out, "Error: %s\n", errorMessage(err))
}

// errUsage marks dispatcher errors: wrong arguments or unknown commands.
var errUsage = errors.New("usage")

type usageError struct{ msg string }

func (e *usageError) Error() string        { return e.msg }
func (e *usageError) Is(target error) bool { return target == errUsage }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// errorMessage strips wrapping context from validation errors so the user
// sees the fixed message only.
func errorMessage(err error) string {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

// Dispatch parses input and calls the ledger. Blank input is a no-op.
func (p *Processor) Dispatch(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToUpper(parts[0])
	switch command {
	case "ADDEXPENSE":
		if len(parts) != 4 {
			return usagef("AddExpense requires date, amount, and category")
		}
		amount, err := parseAmount(parts[2])
		if err != nil {
			return err
		}
		return p.ledger.AddExpense(ctx, parts[1], amount, strings.Trim(parts[3], `"`))

	case "ADDINCOME":
		if len(parts) != 3 {
			return usagef("AddIncome requires date and amount")
		}
		amount, err := parseAmount(parts[2])
		if err != nil {
			return err
		}
		return p.ledger.AddIncome(ctx, parts[1], amount)

	case "LISTTRANSACTIONS":
		return p.ledger.ListTransactions(ctx)

	case "GENERATEMONTHLYREPORT":
		if len(parts) != 3 {
			return usagef("GenerateMonthlyReport requires year and month")
		}
		year, err := strconv.Atoi(parts[1])
		if err != nil {
			return usagef("Invalid year: %s", parts[1])
		}
		month, err := strconv.Atoi(parts[2])
		if err != nil {
			return usagef("Invalid month: %s", parts[2])
		}
		return p.ledger.GenerateMonthlyReport(ctx, year, month)

	case "HELP":
		_, err := io.WriteString(p.out, helpText)
		return err

	default:
		return usagef("Unknown command: %s", command)
	}
}

func parseAmount(s string) (core.Money, error) {
	amount, err := core.ParseAmount(s)
	if err != nil {
		return core.Money{}, usagef("Invalid amount: %s", s)
	}
	return amount, nil
}
