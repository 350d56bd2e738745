package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// Result tables separate columns with whitespace or a comma.
var columnSeparator = regexp.MustCompile(`\s+|\s*,\s*`)

// ResultsFileAdapter reads the result tables the geometry tool writes.
type ResultsFileAdapter struct{}

func NewResultsFileAdapter() ResultsFileAdapter {
	return ResultsFileAdapter{}
}

func (a ResultsFileAdapter) ReadCompGeom(path string) (types.ResultSet, types.ResultSet, error) {
	f, err := openResults(path)
	if err != nil {
		return types.ResultSet{}, types.ResultSet{}, err
	}
	defer f.Close()
	return ParseCompGeom(f)
}

func (a ResultsFileAdapter) ReadMassProps(path string) (types.ResultSet, error) {
	f, err := openResults(path)
	if err != nil {
		return types.ResultSet{}, err
	}
	defer f.Close()
	return ParseMassProps(f)
}

// ParseCompGeom reads the aggregate geometry CSV. The first table holds one
// row per component (name plus four values); repeated component names are
// numbered from 0 in order of appearance, except Totals. A short line ends
// it, the next line is the tag table header, and every following row is
// keyed by its leading columns joined with "_" and carries the two tag
// values in its last two columns.
func ParseCompGeom(r io.Reader) (types.ResultSet, types.ResultSet, error) {
	components := types.NewResultSet()
	tags := types.NewResultSet()
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return components, tags, scanErr(scanner, "aggregate geometry table is empty")
	}
	counts := map[string]int{}
	firstTable := true
	for scanner.Scan() {
		columns := splitColumns(scanner.Text())
		switch {
		case len(columns) < 3:
			firstTable = false
			scanner.Scan()
		case firstTable:
			if len(columns) != len(types.CompGeomFields)+1 {
				return components, tags, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("aggregate geometry table has %d columns not %d: %s",
						len(columns), len(types.CompGeomFields)+1, scanner.Text()))
			}
			name := columns[0]
			if name != types.GroupTotals {
				n, seen := counts[name]
				if seen {
					n++
				}
				counts[name] = n
				name += strconv.Itoa(n)
			}
			for i, field := range types.CompGeomFields {
				components.Put(resultKey(types.ContainerCompGeom, name, field), columns[i+1])
			}
		default:
			group := strings.Join(columns[:len(columns)-2], "_")
			for i, field := range types.TagCompGeomFields {
				tags.Put(resultKey(types.ContainerTagGeom, group, field), columns[len(columns)-2+i])
			}
		}
	}
	return components, tags, scanErr(scanner, "")
}

// ParseMassProps reads the mass-property report. Rows follow the line
// starting with "Name"; consecutive rows for the same geometry are its
// symmetric instances and are numbered from 0, except Totals.
func ParseMassProps(r io.Reader) (types.ResultSet, error) {
	results := types.NewResultSet()
	scanner := bufio.NewScanner(r)
	foundTable := false
	lastName := ""
	counter := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "Name") {
			foundTable = true
			continue
		}
		if !foundTable {
			continue
		}
		columns := splitColumns(line)
		if len(columns) <= len(types.MassPropFields) {
			continue
		}
		if columns[0] != lastName {
			counter = 0
			lastName = columns[0]
		} else {
			counter++
		}
		group := columns[0]
		if group != types.GroupTotals {
			group += strconv.Itoa(counter)
		}
		for i, field := range types.MassPropFields {
			results.Put(resultKey(types.ContainerMassProps, group, field), columns[i+1])
		}
	}
	return results, scanErr(scanner, "")
}

// splitColumns drops trailing empty columns left by a trailing separator.
func splitColumns(line string) []string {
	columns := columnSeparator.Split(line, -1)
	for len(columns) > 0 && columns[len(columns)-1] == "" {
		columns = columns[:len(columns)-1]
	}
	return columns
}

func resultKey(bucket string, qualifier string, field string) string {
	return bucket + ":" + qualifier + ":" + field
}

func openResults(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("results file not found: " + path).
			WithCause(err)
	}
	return f, nil
}

// scanErr converts a scanner failure, or an empty input when emptyMsg is
// set, into an error.
func scanErr(scanner *bufio.Scanner, emptyMsg string) error {
	if err := scanner.Err(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read results").
			WithCause(err)
	}
	if emptyMsg != "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(emptyMsg)
	}
	return nil
}

var _ ports.ResultsReaderPort = ResultsFileAdapter{}
