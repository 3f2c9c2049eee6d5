package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/urfave/cli/v3"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"ticketdesk/internal/model"
	"ticketdesk/pkg/client"
	"ticketdesk/pkg/viewmodel"
)

var errRequestFailed = errors.New("request failed, see log output")

func newTicketClient(cmd *cli.Command) *client.TicketClient {
	ticketClient := client.NewTicketClient(cmd.String("server"))
	if timeout := cmd.Duration("timeout"); timeout > 0 {
		ticketClient.SetTimeout(timeout)
	}
	return ticketClient
}

// newViewModel mirrors the page's startup: build the view-model and load the
// current list before any action runs.
func newViewModel(ctx context.Context, cmd *cli.Command, logger *slog.Logger) *viewmodel.ViewModel {
	vm := viewmodel.New(newTicketClient(cmd), logger)
	vm.Load(ctx)
	return vm
}

func printTickets(w io.Writer, tickets []model.Ticket) {
	if len(tickets) == 0 {
		fmt.Fprintln(w, "No tickets.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPROBLEM")
	for _, ticket := range tickets {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ticket.ID, ticket.Name, ticket.Problem)
	}
	tw.Flush()
}

func newListCommand(out io.Writer, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Show all tickets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			vm := viewmodel.New(newTicketClient(cmd), logger)
			if !vm.Load(ctx) {
				return errRequestFailed
			}
			printTickets(out, vm.Tickets())
			return nil
		},
	}
}

func newAddCommand(out io.Writer, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Submit a new ticket",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Reporter name",
			},
			&cli.StringFlag{
				Name:    "problem",
				Aliases: []string{"p"},
				Usage:   "Problem description",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			vm := newViewModel(ctx, cmd, logger)
			vm.SetName(cmd.String("name"))
			vm.SetProblem(cmd.String("problem"))

			if !vm.Submit(ctx) {
				return errRequestFailed
			}
			printTickets(out, vm.Tickets())
			return nil
		},
	}
}

func newRemoveCommand(out io.Writer, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a ticket by id",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ticketID := cmd.Args().First()
			if ticketID == "" {
				return errors.New("a ticket id is required")
			}

			vm := newViewModel(ctx, cmd, logger)
			if !vm.Remove(ctx, model.Ticket{ID: ticketID}) {
				return errRequestFailed
			}
			printTickets(out, vm.Tickets())
			return nil
		},
	}
}

func newApp(out io.Writer, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "ticketctl",
		Usage: "Submit, list and delete help desk tickets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Value:   "http://localhost:3000",
				Usage:   "Base URL of the ticket server",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request timeout",
			},
		},
		Commands: []*cli.Command{
			newListCommand(out, logger),
			newAddCommand(out, logger),
			newRemoveCommand(out, logger),
		},
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newApp(os.Stdout, logger).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
