package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/mr1hm/go-disaster-dashboard/internal/assistant"
	"github.com/mr1hm/go-disaster-dashboard/internal/catalog"
	"github.com/mr1hm/go-disaster-dashboard/internal/location"
	"github.com/mr1hm/go-disaster-dashboard/internal/models"
	"github.com/mr1hm/go-disaster-dashboard/internal/voice"
)

type app struct {
	in           io.Reader
	clock        clockwork.Clock
	responder    assistant.Responder
	restartDelay time.Duration
	logger       *slog.Logger

	state    string
	district string
	lang     string
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "disaster-assistant",
		Short:        "Emergency and disaster assistant for India",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				slog.SetDefault(a.logger)
			}
		},
	}
	root.PersistentFlags().StringVar(&a.state, "state", "", "state used to localize answers and alerts")
	root.PersistentFlags().StringVar(&a.district, "district", "", "optional district within the state")

	root.AddCommand(a.askCmd(), a.alertsCmd(), a.chatCmd())
	return root
}

// location builds the location from flags; no state means no location.
func (a *app) location() (*models.Location, error) {
	state := strings.TrimSpace(a.state)
	if state == "" {
		return nil, nil
	}
	if !location.IsKnownState(state) {
		return nil, fmt.Errorf("%w: %q", location.ErrUnknownState, state)
	}
	return &models.Location{State: state, District: strings.TrimSpace(a.district)}, nil
}

func (a *app) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question from the built-in guidance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), assistant.ClassifyAndRespond(strings.Join(args, " "), loc))
			return nil
		},
	}
}

func (a *app) alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List the alerts relevant to a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			high, other := location.GroupByLevel(location.FilterAlertsByLocation(catalog.Alerts(), loc))
			if len(high)+len(other) == 0 {
				fmt.Fprintf(out, "No alerts for %s.\n", loc.Format())
				return nil
			}

			printGroup(out, "High priority", high)
			printGroup(out, "Other alerts", other)
			return nil
		},
	}
}

func printGroup(w io.Writer, title string, alerts []models.Alert) {
	if len(alerts) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, al := range alerts {
		fmt.Fprintf(w, "  [%s] %s - %s (%s)\n", al.Level, al.Title, al.Location, al.Timestamp)
		fmt.Fprintf(w, "      %s\n", al.Description)
	}
}

func (a *app) chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant; each input line is one utterance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}
			return a.chat(cmd, loc)
		},
	}
	cmd.Flags().StringVar(&a.lang, "lang", voice.LangEnglishIndia, "recognition language (en-IN or hi-IN)")
	return cmd
}

func (a *app) chat(cmd *cobra.Command, loc *models.Location) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	conv := assistant.NewConversation(a.responder, a.clock, nil)
	defer conv.Wait()

	session := voice.NewSession(voice.NewLineRecognizer(a.in), a.clock, a.restartDelay)
	if err := session.Start(ctx, a.lang); err != nil {
		return err
	}
	defer session.Stop()

	for _, m := range conv.Messages() {
		fmt.Fprintf(out, "assistant: %s\n", m.Content)
	}

	for text := range session.Transcripts() {
		fmt.Fprintf(out, "you: %s\n", text)

		_, done, err := conv.Submit(ctx, text, loc)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		<-done

		msgs := conv.Messages()
		fmt.Fprintf(out, "assistant: %s\n", msgs[len(msgs)-1].Content)
	}

	if err := session.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}
