package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/subject"
)

const defaultWidth = 60

var (
	isTerminalFunc   = term.IsTerminal // mockable
	terminalSizeFunc = term.GetSize    // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out      io.Writer
	fd       int
	subjects subject.Service
	asgmts   assignment.Service
	grades   grade.Service
	reports  *report.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  subjects                - list subjects with their averages")
	fmt.Fprintln(cli.out, "  stats [-subject NAME]   - print statistics of every subject, or of one")
	fmt.Fprintln(cli.out, "  assignment -id ID       - print statistics and grades of an assignment")
	fmt.Fprintln(cli.out, "  overview                - print the dashboard overview")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	statsCmd := flag.NewFlagSet("stats", flag.ContinueOnError)
	statsCmd.SetOutput(cli.out)
	statsSubject := statsCmd.String("subject", "", "The subject name. All subjects are printed when empty.")

	asgmtCmd := flag.NewFlagSet("assignment", flag.ContinueOnError)
	asgmtCmd.SetOutput(cli.out)
	asgmtID := asgmtCmd.Int("id", 0, "The assignment ID.")

	switch args[1] {
	case "subjects":
		return cli.listSubjects(ctx)
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		return cli.printSubjectStats(ctx, *statsSubject)
	case "assignment":
		if err := asgmtCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if *asgmtID <= 0 {
			asgmtCmd.Usage()
			return errHelp
		}
		return cli.printAssignment(ctx, *asgmtID)
	case "overview":
		return cli.printOverview(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}

// width is the terminal width, or defaultWidth when not writing to a terminal.
func (cli *commandLine) width() int {
	if !isTerminalFunc(cli.fd) {
		return defaultWidth
	}
	w, _, err := terminalSizeFunc(cli.fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func (cli *commandLine) rule(title string) {
	fmt.Fprintln(cli.out, title)
	fmt.Fprintln(cli.out, strings.Repeat("=", min(cli.width(), defaultWidth)))
}
