package inp

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sdahmani/atakoris/network"
)

// noColumnHeaderRow lists sections whose first line after the bracket is
// already a data row, not a column-title row to skip. Every other known
// section has one column-title row to discard, matching the historical
// parser's fixed index+=2 (bracket + title) vs index+=1 (bracket only).
var noColumnHeaderRow = map[string]bool{
	"[TITLE]":   true,
	"[OPTIONS]": true,
}

// ParseFile reads path and builds a *network.Network from it. The only
// error this returns is ErrRead, wrapping a filesystem failure; malformed
// data rows are tolerated per-field (see parseFloat below) and
// never abort the read.
func ParseFile(path string) (*network.Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return Parse(string(raw)), nil
}

// Parse builds a *network.Network directly from .inp file content,
// useful for embedded test fixtures that never touch disk.
func Parse(content string) *network.Network {
	lines := strings.Split(content, "\n")
	sections := scanSections(lines)

	n := network.New(title(sections))
	n.Junctions = parseJunctions(sections["[JUNCTIONS]"])
	n.Reservoirs = parseReservoirs(sections["[RESERVOIRS]"])
	n.Tanks = parseTanks(sections["[TANKS]"])
	n.Pipes = parsePipes(sections["[PIPES]"])
	n.Pumps = parsePumps(sections["[PUMPS]"])
	n.Options = parseOptions(sections["[OPTIONS]"])

	applyCoordinates(n, sections["[COORDINATES]"])

	return n
}

// scanSections makes one pass over lines, grouping each bracket-delimited
// section's whitespace-tokenized data rows under its header. Blank lines
// end the current section; `;`-prefixed comment lines are skipped, and a
// comment line directly after a header counts as that section's
// column-title row, so the first data row after it is kept.
func scanSections(lines []string) map[string][][]string {
	sections := make(map[string][][]string)
	var current string
	skipHeaderRow := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			current = ""
			continue
		}
		if strings.HasPrefix(line, ";") {
			skipHeaderRow = false
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = line
			skipHeaderRow = !noColumnHeaderRow[current]
			continue
		}
		if current == "" {
			continue
		}
		if skipHeaderRow {
			skipHeaderRow = false
			continue
		}
		sections[current] = append(sections[current], strings.Fields(line))
	}

	return sections
}

func title(sections map[string][][]string) string {
	rows := sections["[TITLE]"]
	if len(rows) == 0 {
		return ""
	}

	return strings.Join(rows[0], " ")
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return row[i]
}

func parseJunctions(rows [][]string) []*network.Junction {
	out := make([]*network.Junction, 0, len(rows))
	for _, row := range rows {
		if len(row) < 1 {
			continue
		}
		out = append(out, &network.Junction{
			ID:        field(row, 0),
			Elevation: parseFloat(field(row, 1)),
			Demand:    parseFloat(field(row, 2)),
			Pattern:   field(row, 3),
		})
	}

	return out
}

func parseReservoirs(rows [][]string) []*network.Reservoir {
	out := make([]*network.Reservoir, 0, len(rows))
	for _, row := range rows {
		if len(row) < 1 {
			continue
		}
		out = append(out, &network.Reservoir{
			ID:      field(row, 0),
			Head:    parseFloat(field(row, 1)),
			Pattern: field(row, 2),
		})
	}

	return out
}

func parseTanks(rows [][]string) []*network.Tank {
	out := make([]*network.Tank, 0, len(rows))
	for _, row := range rows {
		if len(row) < 1 {
			continue
		}
		out = append(out, &network.Tank{
			ID:           field(row, 0),
			Elevation:    parseFloat(field(row, 1)),
			InitialLevel: parseFloat(field(row, 2)),
		})
	}

	return out
}

func parsePipes(rows [][]string) []*network.Pipe {
	out := make([]*network.Pipe, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		out = append(out, &network.Pipe{
			ID:        field(row, 0),
			Start:     field(row, 1),
			End:       field(row, 2),
			Length:    parseFloat(field(row, 3)),
			Diameter:  parseFloat(field(row, 4)),
			Roughness: parseFloat(field(row, 5)),
			MinorLoss: parseFloat(field(row, 6)),
			Status:    network.ParseStatus(field(row, 7)),
		})
	}

	return out
}

func parsePumps(rows [][]string) []*network.Pump {
	out := make([]*network.Pump, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		p := &network.Pump{
			ID:     field(row, 0),
			Start:  field(row, 1),
			End:    field(row, 2),
			Status: network.Open,
		}
		applyPumpParameters(p, row[3:])
		out = append(out, p)
	}

	return out
}

// applyPumpParameters reads trailing KEYWORD VALUE pairs, e.g.
// `HEAD curve1` (ignored: curve tables aren't modeled, see Non-goals) or
// `POWER 50`, or ALPHA/BETA/GAMMA values. A bare curve reference with no
// recognized keyword leaves Alpha, Beta, Gamma and PowerRating all zero;
// the coefficient updater then gives that pump a zero A entry whenever
// its flow is at least network.FlowEpsilon, which makes the diagonal
// singular, so such a pump needs its curve set some other way (e.g. by
// netbuild or the dto boundary) before it can be solved.
func applyPumpParameters(p *network.Pump, fields []string) {
	for i := 0; i+1 < len(fields); i += 2 {
		switch strings.ToUpper(fields[i]) {
		case "POWER":
			p.PowerRating = parseFloat(fields[i+1])
		case "ALPHA":
			p.Alpha = parseFloat(fields[i+1])
		case "BETA":
			p.Beta = parseFloat(fields[i+1])
		case "GAMMA":
			p.Gamma = parseFloat(fields[i+1])
		}
	}
}

func parseOptions(rows [][]string) network.Options {
	o := network.DefaultOptions()
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		switch row[0] {
		case "Units":
			o.FlowUnit = network.ParseFlowUnit(row[1])
		case "Headloss":
			o.HeadlossFormula = network.ParseHeadlossFormula(row[1])
		case "Accuracy":
			o.Accuracy = parseFloat(row[1])
		case "Trials":
			if v, err := strconv.Atoi(row[1]); err == nil {
				o.Trials = v
			}
		case "Pattern":
			o.Pattern = row[1]
		case "Demand":
			// "Demand Multiplier <value>"
			if len(row) >= 3 && strings.EqualFold(row[1], "Multiplier") {
				o.DemandMultiplier = parseFloat(row[2])
			}
		}
	}

	return o
}

func applyCoordinates(n *network.Network, rows [][]string) {
	positions := make(map[string]network.Position, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		positions[row[0]] = network.Position{X: parseFloat(row[1]), Y: parseFloat(row[2])}
	}
	if len(positions) == 0 {
		return
	}

	for _, j := range n.Junctions {
		if pos, ok := positions[j.ID]; ok {
			p := pos
			j.Position = &p
		}
	}
	for _, tnk := range n.Tanks {
		if pos, ok := positions[tnk.ID]; ok {
			p := pos
			tnk.Position = &p
		}
	}
	for _, r := range n.Reservoirs {
		if pos, ok := positions[r.ID]; ok {
			p := pos
			r.Position = &p
		}
	}
}
