// Package observability provides formatted terminal output for the CLI commands.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jonathan/talkto/internal/reps"
	"github.com/jonathan/talkto/internal/schemas"
	"github.com/jonathan/talkto/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in an intensity bar
	barWidth = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out       io.Writer
	useColors bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithColors enables or disables ANSI colors.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// colorize applies attrs when colors are enabled.
func (p *Printer) colorize(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// newTable creates a borderless, left-aligned table
func (p *Printer) newTable() *tablewriter.Table {
	return tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) renderTable(headers []string, rows [][]string) {
	table := p.newTable()
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		fmt.Fprintf(p.out, "failed to render table: %v\n", err)
		return
	}
	if err := table.Render(); err != nil {
		fmt.Fprintf(p.out, "failed to render table: %v\n", err)
	}
}

// PartyLabel renders a party name tinted by its badge.
func (p *Printer) PartyLabel(party string) string {
	name := reps.PartyName(party)
	switch reps.PartyBadge(party) {
	case reps.BadgeDemocrat:
		return p.colorize(name, color.FgBlue, color.Bold)
	case reps.BadgeRepublican:
		return p.colorize(name, color.FgRed, color.Bold)
	case reps.BadgeIndependent:
		return p.colorize(name, color.FgMagenta, color.Bold)
	default:
		return p.colorize(name, color.FgWhite)
	}
}

// PrintRepresentatives outputs one card per official, grouped by bucket.
func (p *Printer) PrintRepresentatives(resp *types.RepsResponse) {
	if resp == nil {
		return
	}

	groups := []struct {
		title string
		reps  []types.ClassifiedRepresentative
	}{
		{"U.S. SENATORS", resp.Senators},
		{"U.S. HOUSE", resp.HouseReps},
		{"STATE OFFICIALS", resp.State},
	}

	for _, g := range groups {
		if len(g.reps) == 0 {
			continue
		}
		var sb strings.Builder
		for i, rep := range g.reps {
			sb.WriteString(p.card(rep))
			if i < len(g.reps)-1 {
				sb.WriteString("\n\n")
			}
		}
		p.printBox(fmt.Sprintf("%s (%d) - %s", g.title, len(g.reps), resp.Zip), sb.String())
	}
}

func (p *Printer) card(rep types.ClassifiedRepresentative) string {
	var sb strings.Builder
	sb.WriteString(rep.Name + "\n")
	sb.WriteString(fmt.Sprintf("  %s · %s", rep.Title, p.PartyLabel(rep.Party)))
	if rep.Area != "" && rep.Area != rep.Title {
		sb.WriteString(fmt.Sprintf("\n  Area:    %s", rep.Area))
	}
	if rep.PhoneDisplay != "" {
		sb.WriteString(fmt.Sprintf("\n  Phone:   %s", rep.PhoneDisplay))
	}
	if rep.ContactURL != "" {
		sb.WriteString(fmt.Sprintf("\n  Contact: %s", rep.ContactURL))
	}
	return sb.String()
}

// IntensityBar draws a 0-100 score as a ten-cell bar.
func IntensityBar(intensity int) string {
	filled := max(0, min(barWidth, (intensity+5)/10))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintPublicTrends outputs the public interest panel as a ranked table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPublicTrends(resp types.PublicTrendsResponse) {
	fmt.Fprintf(p.out, "What people are searching (%s, updated %s)\n\n",
		p.colorize(resp.Source, color.FgCyan), resp.Updated.Format("2006-01-02 15:04 MST"))

	rows := make([][]string, 0, len(resp.Trends))
	for i, t := range resp.Trends {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			t.Icon + " " + t.Title,
			IntensityBar(t.Intensity),
			fmt.Sprintf("%d", t.Intensity),
			t.SearchVolume,
		})
	}
	p.renderTable([]string{"#", "Topic", "Interest", "Score", "Volume"}, rows)
}

// PrintTrending outputs the legislative activity panel as a ranked table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTrending(resp *types.TrendingResponse) {
	if resp == nil {
		return
	}
	fmt.Fprintf(p.out, "Active in Congress (updated %s)\n\n", resp.Updated.Format("2006-01-02 15:04 MST"))
	if len(resp.Trending) == 0 {
		fmt.Fprintln(p.out, "No categorized legislative activity.")
		return
	}

	rows := make([][]string, 0, len(resp.Trending))
	for i, c := range resp.Trending {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Icon + " " + c.Title,
			fmt.Sprintf("%d", c.BillCount),
			IntensityBar(c.Intensity),
			c.Subtitle,
		})
	}
	p.renderTable([]string{"#", "Category", "Bills", "Activity", "Latest action"}, rows)
}

// PrintRecommendation outputs local and national organizations for an issue.
func (p *Printer) PrintRecommendation(rec *types.Recommendation) {
	if rec == nil {
		return
	}

	if rec.Metro != nil {
		if len(rec.Local) > 0 {
			p.printBox(fmt.Sprintf("LOCAL: %s IN %s", strings.ToUpper(rec.Category.Name), strings.ToUpper(rec.Metro.Name)), p.orgList(rec.Local))
		} else {
			p.printBox("LOCAL ORGANIZATIONS", fmt.Sprintf("No local %s organizations listed for %s yet.", rec.Category.Name, rec.Metro.Name))
		}
	}

	if len(rec.National) > 0 {
		p.printBox("NATIONAL: "+strings.ToUpper(rec.Category.Name), p.orgList(rec.National))
	}

	fmt.Fprintf(p.out, "Find more: %s\n", rec.SearchURL) //nolint:errcheck
}

func (p *Printer) orgList(orgs []types.Organization) string {
	var sb strings.Builder
	count := min(len(orgs), maxItemsToShow)
	for i := 0; i < count; i++ {
		org := orgs[i]
		sb.WriteString(fmt.Sprintf("• %s\n", org.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", org.Website))
		if org.ChapterFinderURL != "" {
			sb.WriteString(fmt.Sprintf("  Chapters: %s\n", org.ChapterFinderURL))
		} else if org.HasLocalChapters {
			sb.WriteString("  Has local chapters\n")
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(orgs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(orgs)-maxItemsToShow))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// PrintIssues lists the issue categories as a table.
func (p *Printer) PrintIssues(categories []types.IssueCategory) {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.ID, c.Name, fmt.Sprintf("%d", len(c.Organizations))})
	}
	p.renderTable([]string{"ID", "Issue", "Organizations"}, rows)
}

// PrintMetros lists the metros and their zip prefixes as a table.
func (p *Printer) PrintMetros(metros []types.Metro) {
	rows := make([][]string, 0, len(metros))
	for _, m := range metros {
		rows = append(rows, []string{m.ID, m.Name, strings.Join(m.ZipPrefixes, " ")})
	}
	p.renderTable([]string{"ID", "Metro", "Zip prefixes"}, rows)
}

// PrintValidation reports the schema check of one dataset file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(name, path string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "%s %s (%s)\n", p.colorize("✓", color.FgGreen), name, path)
		return
	}

	fmt.Fprintf(p.out, "%s %s (%s)\n", p.colorize("✗", color.FgRed), name, path)
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			fmt.Fprintf(p.out, "    %s: %s\n", fe.Field, fe.Message)
		}
		return
	}
	fmt.Fprintf(p.out, "    %v\n", err)
}
