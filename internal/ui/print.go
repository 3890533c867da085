package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"phantomid/internal/domain"
)

const usageNotice = "Synthetic test data only. Do not use to impersonate real devices."

const banner = `
    +-----------------------------------------------+
    |              Phantom ID                       |
    |   Synthetic device fingerprint generator      |
    +-----------------------------------------------+`

// Banner prints the tool header and the usage notice. The header box is
// skipped when output is piped.
func (p *Printer) Banner() {
	if p.interactive {
		fmt.Fprintln(p.w, p.style(styleBanner).Render(banner))
	}
	fmt.Fprintln(p.w, p.style(styleWarn).Render(usageNotice))
	fmt.Fprintln(p.w)
}

// Info prints an informational line prefixed with [*]
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(styleWarn).Render("[*]"), fmt.Sprintf(format, args...))
}

// OK prints a success line prefixed with [+]
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(styleOK).Render("[+]"), fmt.Sprintf(format, args...))
}

// Fail prints a failure line prefixed with [-]
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(styleBad).Render("[-]"), fmt.Sprintf(format, args...))
}

// Heading prints a bold section title
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.w, p.style(styleHeading).Render(title))
}

// Field prints an indented "label: value" pair
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "  %s: %s\n", label, p.style(styleValue).Render(value))
}

// Line prints s unstyled
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Verdict prints a labelled pass/fail result
func (p *Printer) Verdict(label string, ok bool) {
	if ok {
		p.OK("%s: %s", label, p.style(styleOK).Bold(true).Render("VALID"))
		return
	}
	p.Fail("%s: %s", label, p.style(styleBad).Bold(true).Render("INVALID"))
}

// DemoLine prints one phantom in the "<type>: MAC=... TTL=... Hostname=..." form
func (p *Printer) DemoLine(deviceType string, ph domain.Phantom) {
	fmt.Fprintf(p.w, "%s: MAC=%s TTL=%d Hostname=%s\n",
		p.style(styleInfo).Render(deviceType), ph.MAC, ph.TTL, ph.Hostname)
}

// Profiles prints the catalog as an aligned table
func (p *Printer) Profiles(types []domain.DeviceType, lookup func(string) domain.Profile) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tOS\tTTL\tWINDOW\tUSER AGENT")
	for _, dt := range types {
		prof := lookup(string(dt))
		ua := prof.UserAgent
		if ua == "" {
			ua = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", dt, prof.OS, prof.TTL, prof.WindowSize, ua)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(p.w, p.style(styleDim).Render(fmt.Sprintf("%d profiles; unknown types fall back to linux", len(types))))
	return nil
}

// WritePhantoms renders phantoms as a plain aligned table. It never styles
// output so the result is stable when piped.
func WritePhantoms(w io.Writer, phantoms []domain.Phantom) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOSTNAME\tMAC\tOS\tTTL\tWINDOW\tUSER AGENT")
	for _, ph := range phantoms {
		ua := strings.TrimSpace(ph.UserAgent)
		if ua == "" {
			ua = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", ph.Hostname, ph.MAC, ph.OS, ph.TTL, ph.WindowSize, ua)
	}
	return tw.Flush()
}
