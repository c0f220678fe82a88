package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	controller "github.com/m-mizutani/mekupdater/pkg/controller/http"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	noticeColor  = color.New(color.FgYellow, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

// output holds presentation options shared by the commands
type output struct {
	JSON bool
}

func (o *output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print the raw result as JSON",
			Destination: &o.JSON,
			Sources:     cli.EnvVars("MEKUPDATER_JSON"),
		},
	}
}

// printResult prints an operation result and turns a failed outcome into
// an error so the process exits non-zero.
func printResult[T any](w io.Writer, o *output, operation string, result model.OperationResult[T], render func(io.Writer, T)) error {
	if o.JSON {
		if err := writeJSON(w, &controller.ResultResponse[T]{
			Outcome: result.Outcome,
			Message: result.Message,
			Value:   result.Value,
		}); err != nil {
			return err
		}
	} else {
		printOutcome(w, operation, result.Outcome.IsSuccess(), result.Outcome.String(), result.Message)
		if v, ok := result.Get(); ok {
			render(w, v)
		}
	}

	if !result.IsSuccess() {
		return goerr.New("operation failed",
			goerr.V("operation", operation),
			goerr.V("outcome", result.Outcome),
			goerr.V("message", result.Message),
		)
	}
	return nil
}

func printOutcome(w io.Writer, operation string, success bool, outcome, message string) {
	c := successColor
	if !success {
		c = failureColor
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", operation, c.Sprint(outcome))
	if !success && message != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", message)
	}
}

func printField(w io.Writer, label string, value any) {
	_, _ = fmt.Fprintf(w, "  %s %v\n", labelColor.Sprintf("%-14s", label+":"), value)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}
