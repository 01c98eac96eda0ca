package main

import (
	"context"
	"fmt"
	"os"

	"raijai/internal/cli"
)

const usage = `raijai - personal expense ledger

Usage:
  raijai <command> [flags]

Session:
  login    -email <email> -secret <secret>
  logout

Transactions:
  add      -type income|expense -name <name> -amount <decimal> -category <name> [-date YYYY-MM-DD] [-note <text>]
  list     [-type all|income|expense] [-q <search>]
  categories
  edit     -id <id> followed by the same flags as add
  delete   -id <id>
  clear

Views:
  summary
  report
  months

Profile & settings:
  profile  [-name <display name>] [-avatar <url>]
  passwd   -current <secret> -new <secret>
  prefs    [-dark true|false] [-bg <theme string>]

Data:
  export   [-o <file>]
  import   -i <file>
`

func main() {
	cli.LoadEnvFile()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command, args := os.Args[1], os.Args[2:]
	if command == "help" || command == "-h" || command == "--help" {
		fmt.Print(usage)
		return
	}

	level := os.Getenv("RAIJAI_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := cli.SetupLogger(level)
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	ldgr, store, cleanup, err := cli.OpenLedger(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to open ledger", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := dispatch(ctx, command, args, ldgr, store); err != nil {
		fmt.Fprintf(os.Stderr, "raijai: %v\n", err)
		os.Exit(1)
	}
}
