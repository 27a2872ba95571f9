package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/app"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// renderFields renders label/value pairs as a two column table.
func renderFields(fields [][2]string) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f[0], f[1]})
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

// startSpinner shows progress on w while a network step runs. In verbose
// mode the log already shows progress, so the spinner stays off. The
// returned stop func prints the final message, if any.
func startSpinner(w io.Writer, message string, verbose bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("cyan")

	if !verbose {
		s.Start()
	}

	stop := func() {
		final := s.FinalMSG
		s.FinalMSG = ""
		if !verbose {
			s.Stop()
		}
		if final != "" {
			fmt.Fprintln(w, final)
		}
	}
	return s, stop
}

func formatAmount(a models.Amount) string {
	return a.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

// describeError turns well-known failures into a hint the user can act on.
func describeError(err error) string {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, models.ErrUnauthorized):
		return app.MsgPurchaseRequired
	case errors.Is(err, crypto.ErrDecryption):
		return app.MsgWrongKey
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidLoginPassword
	default:
		return err.Error()
	}
}
