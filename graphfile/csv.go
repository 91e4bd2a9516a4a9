package graphfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// csvFields is the number of columns of an edge record.
const csvFields = 3

// DecodeCSV reads "from,to,weight" records from r into a Document. Nodes are
// not declared; they follow first appearance.
func DecodeCSV(r io.Reader) (*Document, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = csvFields
	reader.TrimLeadingSpace = true

	doc := &Document{}
	for record := 0; ; record++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %w", ErrInvalidDocument, err)
		}

		raw := strings.TrimSpace(fields[2])
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if record == 0 {
				continue // header
			}
			line, _ := reader.FieldPos(2)

			return nil, fmt.Errorf("%w: csv line %d: weight %q is not a number", ErrInvalidDocument, line, raw)
		}
		doc.Edges = append(doc.Edges, EdgeSpec{
			From:   strings.TrimSpace(fields[0]),
			To:     strings.TrimSpace(fields[1]),
			Weight: &w,
		})
	}

	return doc, nil
}

// LoadCSV decodes a CSV edge list from r and builds its graph.
func LoadCSV(r io.Reader) (*core.WeightedGraph[string], error) {
	doc, err := DecodeCSV(r)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}
