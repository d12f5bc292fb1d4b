package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
)

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".csv", ".tsv")
}

// column says where a CSV cell goes in the Input.
type column struct {
	field string // gender, age, weight, label, or a site name
	site  bodyfat.Site
	slot  int
}

func (csvParser) Parse(content []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = sniffDelimiter(content)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FieldError{Field: "header", Msg: "empty file"}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var recs []Record
	for row := 1; ; row++ {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		recs = append(recs, recordFromRow(cols, cells))
	}
	if len(recs) == 0 {
		return nil, &FieldError{Field: "rows", Msg: "no records"}
	}
	return recs, nil
}

func recordFromRow(cols []*column, cells []string) Record {
	var rec Record
	sites := make([][bodyfat.MaxReadings]string, len(siteOrder))
	for i, cell := range cells {
		if i >= len(cols) || cols[i] == nil {
			continue
		}
		c := cols[i]
		v := strings.TrimSpace(cell)
		switch c.field {
		case "label":
			if rec.Label == "" {
				rec.Label = v
			}
		case "gender":
			rec.Input.Gender = bodyfat.Gender(v)
		case "age":
			rec.Input.Age = v
		case "weight":
			rec.Input.Weight = v
		default:
			sites[siteIndex(c.site)][c.slot] = v
		}
	}
	for i, site := range siteOrder {
		rec.Input.SetReadings(site, trimReadings(sites[i][:]))
	}
	return rec
}

// trimReadings drops trailing empty cells; nil when nothing was entered.
func trimReadings(cells []string) bodyfat.Readings {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	if n == 0 {
		return nil
	}
	out := make(bodyfat.Readings, n)
	copy(out, cells[:n])
	return out
}

var siteOrder = bodyfat.Sites

func siteIndex(s bodyfat.Site) int {
	for i, site := range siteOrder {
		if site == s {
			return i
		}
	}
	return 0
}

var slotPattern = regexp.MustCompile(`^([a-z]+)[_\s-]?([1-3])$`)

// mapColumns resolves each header cell. Unknown columns map to nil.
func mapColumns(header []string) ([]*column, error) {
	cols := make([]*column, len(header))
	for i, h := range header {
		name, unit := splitUnits(strings.TrimPrefix(h, "\ufeff"))
		name = strings.ToLower(name)
		var c *column
		switch name {
		case "name", "id":
			c = &column{field: "label"}
		case "gender", "sex":
			c = &column{field: "gender"}
		case "age":
			c = &column{field: "age"}
		case "weight":
			c = &column{field: "weight"}
		default:
			site, slot, ok := parseSiteColumn(name)
			if !ok {
				continue
			}
			c = &column{field: string(site), site: site, slot: slot}
		}
		if unit != "" && !unitAllowed(c.field, unit) {
			return nil, &FieldError{Field: h, Msg: fmt.Sprintf("unsupported unit %q", unit)}
		}
		cols[i] = c
	}
	return cols, nil
}

func parseSiteColumn(name string) (bodyfat.Site, int, bool) {
	if site, ok := bodyfat.ParseSite(name); ok {
		return site, 0, true
	}
	m := slotPattern.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	site, ok := bodyfat.ParseSite(m[1])
	if !ok {
		return "", 0, false
	}
	return site, int(m[2][0] - '1'), true
}

var fieldUnits = map[string][]string{
	"age":    {"yrs", "yr", "years", "y"},
	"weight": {"lbs", "lb"},
}

func unitAllowed(field, unit string) bool {
	u := strings.ToLower(unit)
	allowed, ok := fieldUnits[field]
	if !ok {
		site, isSite := bodyfat.ParseSite(field)
		if !isSite {
			return true
		}
		allowed = []string{site.Unit()}
	}
	for _, a := range allowed {
		if a == u {
			return true
		}
	}
	return false
}

var unitPatterns = []struct {
	re   *regexp.Regexp
	pick int
}{
	{regexp.MustCompile(`^(.*)\s*\(([^)]+)\)\s*$`), 2},  // e.g., Waist (in)
	{regexp.MustCompile(`^(.*)\s*\[([^\]]+)\]\s*$`), 2}, // e.g., Thigh [mm]
	{regexp.MustCompile(`(?i)^(.*?)[_\s-]+(mm|in|lbs?|yrs?)$`), 2},
}

func splitUnits(name string) (clean string, unit string) {
	s := strings.TrimSpace(name)
	for _, p := range unitPatterns {
		if m := p.re.FindStringSubmatch(s); len(m) >= 3 {
			base := strings.TrimSpace(m[1])
			u := strings.TrimSpace(m[p.pick])
			if base != "" && u != "" {
				return base, u
			}
		}
	}
	return s, ""
}

// sniffDelimiter picks the most frequent of ',', ';' and tab in the header line.
func sniffDelimiter(content []byte) rune {
	line := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	best, bestN := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}
