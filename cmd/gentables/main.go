// Command gentables builds a Go source file containing a serialized
// properties.Table, from a local checkout of Unicode Character Database
// files, so a program can embed an exact, specific UCD release instead of
// depending on properties.Default's bootstrap approximation at runtime.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"

	"github.com/Dooez/libunicode/properties"
	"github.com/Dooez/libunicode/ucd"
)

var tablesTemplate = template.Must(template.New("tables").Parse(`// Code generated by gentables. DO NOT EDIT.

package {{.Package}}

import "github.com/Dooez/libunicode/properties"

var generatedStage1 = []uint16{ {{range .Stage1}}{{.}},{{end}} }

var generatedStage2 = []uint16{ {{range .Stage2}}{{.}},{{end}} }

var generatedRecords = []properties.Record{
{{range .Records}}	{ {{.GeneralCategory}}, {{.Script}}, {{.EastAsianWidth}}, {{.GraphemeClusterBreak}}, {{.EmojiCategory}}, {{.Flags}} },
{{end}}}

const generatedBlockSize = {{.BlockSize}}

// GeneratedTable is a properties.Table built once, at init time, from the
// stage1/stage2/records data above.
var GeneratedTable = properties.NewTable(generatedStage1, generatedStage2, generatedRecords, generatedBlockSize)
`))

type tableRecordFields struct {
	GeneralCategory, Script, EastAsianWidth, GraphemeClusterBreak, EmojiCategory, Flags int
}

type templateData struct {
	Package   string
	BlockSize int
	Stage1    []uint16
	Stage2    []uint16
	Records   []tableRecordFields
}

func main() {
	root := flag.String("ucd", "", "path to a directory of raw UCD files")
	out := flag.String("out", "tables_generated.go", "output file path")
	pkg := flag.String("package", "generated", "package name for the generated file (must not be \"properties\": the generated file imports it)")
	blockSize := flag.Int("blocksize", properties.DefaultBlockSize, "two-stage table block size")
	flag.Parse()

	if *root == "" {
		log.Fatal("gentables: -ucd is required")
	}

	table, err := ucd.LoadDirectory(*root, ucd.WithBlockSize(*blockSize))
	if err != nil {
		log.Fatalf("gentables: %v", err)
	}

	data := templateData{Package: *pkg, BlockSize: *blockSize}
	data.Stage1, data.Stage2, data.Records = exportTable(table)

	var buf bytes.Buffer
	if err := tablesTemplate.Execute(&buf, data); err != nil {
		log.Fatalf("gentables: template: %v", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentables: formatting generated source: %v", err)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("gentables: writing %s: %v", *out, err)
	}
	fmt.Printf("gentables: wrote %s (%d records, %d stage2 blocks)\n", *out, table.NumProperties(), table.NumStage2Blocks())
}

// exportTable walks every codepoint through table.Get to recover the raw
// stage1/stage2/records arrays, since properties.Table keeps them private.
// This is the one legitimate reason for gentables to probe the table cell
// by cell rather than linking against its internals: it only runs at
// build time, never in a latency-sensitive path.
func exportTable(table *properties.Table) (stage1, stage2 []uint16, records []tableRecordFields) {
	blockSize := table.BlockSize()
	numBlocks := properties.MaxCodepoint / blockSize
	stage1 = make([]uint16, numBlocks)
	seenBlocks := make(map[string]uint16)
	recIndex := make(map[properties.Record]uint16)

	for b := 0; b < numBlocks; b++ {
		block := make([]uint16, blockSize)
		for i := 0; i < blockSize; i++ {
			rec := table.Get(rune(b*blockSize + i))
			idx, ok := recIndex[rec]
			if !ok {
				idx = uint16(len(records))
				recIndex[rec] = idx
				records = append(records, tableRecordFields{
					GeneralCategory:      int(rec.GeneralCategory),
					Script:               int(rec.Script),
					EastAsianWidth:       int(rec.EastAsianWidth),
					GraphemeClusterBreak: int(rec.GraphemeClusterBreak),
					EmojiCategory:        int(rec.EmojiCategory),
					Flags:                int(rec.Flags),
				})
			}
			block[i] = idx
		}
		sig := blockSignatureOf(block)
		s1, ok := seenBlocks[sig]
		if !ok {
			s1 = uint16(len(stage2) / blockSize)
			stage2 = append(stage2, block...)
			seenBlocks[sig] = s1
		}
		stage1[b] = s1
	}
	return stage1, stage2, records
}

func blockSignatureOf(block []uint16) string {
	buf := make([]byte, len(block)*2)
	for i, v := range block {
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return string(buf)
}
