package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/client/services"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/filex"
)

const timeFormat = "2006-01-02 15:04"

func (a *App) Plots(ctx context.Context) error {
	plots, err := a.plots.List(ctx)
	if err != nil {
		return err
	}
	if len(plots) == 0 {
		fmt.Fprintln(a.out, "No plots cached yet. Run 'refresh' while online.")
		return nil
	}

	rows := make([][]string, 0, len(plots))
	for _, p := range plots {
		rows = append(rows, []string{p.ID, p.Name, p.Crop, strconv.FormatFloat(p.AreaHa, 'f', 2, 64)})
	}
	fmt.Fprintln(a.out, a.table([]string{"ID", "NAME", "CROP", "AREA HA"}, rows))
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	n, err := a.plots.Refresh(ctx)
	if errors.Is(err, common.ErrOffline) {
		fmt.Fprintln(a.out, "Offline: showing cached plots only.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d plot(s) loaded.\n", n)
	return nil
}

// Log records an operation. Without arguments it prompts for each field.
func (a *App) Log(ctx context.Context, args []string) error {
	in, imagePath, err := parseLogArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if in, imagePath, err = a.promptLog(); err != nil {
			return err
		}
	}

	if imagePath != "" {
		data, contentType, err := filex.ReadAttachment(imagePath)
		if err != nil {
			return err
		}
		in.Attachment = &models.Attachment{Data: data, ContentType: contentType, FileName: filepath.Base(imagePath)}
	}

	res, err := a.ops.Record(ctx, in)
	if err != nil {
		return err
	}

	switch {
	case !res.Queued:
		fmt.Fprintf(a.out, "Saved as %s.\n", res.Operation.ID)
	case res.IsQueuedBecauseOffline():
		fmt.Fprintf(a.out, "Queued as #%d; it will be sent when the connection returns.\n", res.LocalID)
	default:
		fmt.Fprintf(a.out, "Server did not accept the operation (%v); queued as #%d.\n", res.Reason, res.LocalID)
	}
	return nil
}

func parseLogArgs(args []string) (services.RecordInput, string, error) {
	var in services.RecordInput
	if len(args) == 0 {
		return in, "", nil
	}
	if len(args) < 2 {
		return in, "", errors.New("usage: log <plot> <type> [-image path] [notes...]")
	}

	t, err := models.ParseOperationType(args[1])
	if err != nil {
		return in, "", err
	}
	in.PlotID = args[0]
	in.Type = t

	var imagePath string
	var notes []string
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		if rest[i] == "-image" || rest[i] == "--image" {
			if i+1 >= len(rest) {
				return in, "", errors.New("-image needs a file path")
			}
			imagePath = rest[i+1]
			i++
			continue
		}
		notes = append(notes, rest[i])
	}
	in.Notes = strings.Join(notes, " ")
	return in, imagePath, nil
}

func (a *App) promptLog() (services.RecordInput, string, error) {
	var in services.RecordInput

	plotID, err := GetSimpleText(a.scanner, "Plot id", a.out)
	if err != nil {
		return in, "", err
	}

	names := make([]string, 0, len(models.OperationTypes))
	for _, t := range models.OperationTypes {
		names = append(names, string(t))
	}
	rawType, err := GetSimpleText(a.scanner, "Operation type ("+strings.Join(names, ", ")+")", a.out)
	if err != nil {
		return in, "", err
	}
	t, err := models.ParseOperationType(rawType)
	if err != nil {
		return in, "", err
	}

	notes, err := GetMultiline(a.scanner, "Notes", a.out)
	if err != nil {
		return in, "", err
	}
	imagePath, err := GetSimpleText(a.scanner, "Image path (empty for none)", a.out)
	if err != nil {
		return in, "", err
	}

	in.PlotID = plotID
	in.Type = t
	in.Notes = notes
	return in, imagePath, nil
}

func (a *App) Queue(ctx context.Context) error {
	entries, err := a.ops.Pending(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Queue is empty.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		next := ""
		if !e.NextAttemptAt.IsZero() {
			next = e.NextAttemptAt.Local().Format(timeFormat)
		}
		image := ""
		if e.Attachment != nil {
			image = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.LocalID, 10), e.PlotID, string(e.Type), string(e.Status),
			strconv.Itoa(e.RetryCount), image, next, e.Error,
		})
	}
	fmt.Fprintln(a.out, a.table([]string{"#", "PLOT", "TYPE", "STATUS", "RETRIES", "IMAGE", "NEXT ATTEMPT", "ERROR"}, rows))
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	if !a.monitor.IsOnline() && !a.monitor.Check(ctx) {
		fmt.Fprintln(a.out, a.offlineBanner())
		return nil
	}

	report, err := a.sync.TriggerSync(ctx)
	if err != nil {
		return err
	}
	if report == nil {
		if a.sync.State().IsSyncing {
			fmt.Fprintln(a.out, "Sync already in progress.")
		} else {
			fmt.Fprintln(a.out, "Nothing to sync.")
		}
		return nil
	}
	printReport(a, report)
	return nil
}

func (a *App) Retry(ctx context.Context) error {
	n, err := a.ops.RetryFailed(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d failed operation(s) re-armed.\n", n)
	if n == 0 {
		return nil
	}
	return a.Sync(ctx)
}

func (a *App) Purge(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: purge <local-id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid local id %q", args[0])
	}
	if err := a.ops.Purge(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Operation #%d dropped.\n", id)
	return nil
}

func (a *App) History(ctx context.Context) error {
	ops, err := a.ops.History(ctx)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		fmt.Fprintln(a.out, "No delivered operations yet.")
		return nil
	}

	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{
			op.OccurredAt.Local().Format(timeFormat), op.PlotID, string(op.Type), op.Notes, op.ImageURL,
		})
	}
	fmt.Fprintln(a.out, a.table([]string{"WHEN", "PLOT", "TYPE", "NOTES", "IMAGE"}, rows))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	s := a.sync.State()

	conn := "offline"
	if s.IsOnline {
		conn = "online"
	}
	last := "never"
	if !s.LastSyncTime.IsZero() {
		last = s.LastSyncTime.Local().Format(time.RFC1123)
	}

	fmt.Fprintf(a.out, "Server:     %s (%s)\n", a.config.ServerEndpointAddr, conn)
	fmt.Fprintf(a.out, "Syncing:    %t\n", s.IsSyncing)
	fmt.Fprintf(a.out, "Pending:    %d\n", s.Pending)
	fmt.Fprintf(a.out, "Last sync:  %s\n", last)
	if s.LastReport != nil {
		printReport(a, s.LastReport)
	}
	return nil
}

func printReport(a *App, r *services.SyncReport) {
	line := fmt.Sprintf("Last pass:  %d sent, %d failed, %d waiting (%s)",
		r.Succeeded, r.Failed, r.Skipped, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	if r.Failed > 0 {
		line = a.styles.failed.Render(line)
	}
	fmt.Fprintln(a.out, line)
}

func (a *App) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(a.styles.muted).
		Headers(headers...).
		Rows(rows...).
		String()
}
