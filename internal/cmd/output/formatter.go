// Package output renders command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/panelkit/internal/cmd/table"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatWide  Format = "wide" // table with extra columns
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// IsTable reports whether f renders as a table. The empty format does.
func (f Format) IsTable() bool {
	return f == FormatTable || f == FormatWide || f == ""
}

// Data is table output data.
type Data = table.Data

// Formatter writes data to w.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format. Table formats, including
// wide, share TableFormatter; the caller picks the columns.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return JSONFormatter{}
	case FormatYAML:
		return YAMLFormatter{}
	default:
		return TableFormatter{}
	}
}

// JSONFormatter writes indented JSON.
type JSONFormatter struct{}

// Format implements Formatter.
func (JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// YAMLFormatter writes YAML with unindented sequences.
type YAMLFormatter struct{}

// Format implements Formatter.
func (YAMLFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TableFormatter writes Data as a table. Structs are shown as property/value
// rows; anything else falls back to JSON.
type TableFormatter struct{}

// Format implements Formatter.
func (TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return render(w, v)
	case *Data:
		return render(w, *v)
	}
	if rows, ok := structRows(data); ok {
		return render(w, rows)
	}
	return JSONFormatter{}.Format(w, data)
}

var alignments = map[table.Align]tw.Align{
	table.AlignLeft:   tw.AlignLeft,
	table.AlignCenter: tw.AlignCenter,
	table.AlignRight:  tw.AlignRight,
}

func render(w io.Writer, data Data) error {
	var config tablewriter.Config
	if len(data.ColumnAlignment) > 0 {
		perColumn := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			if mapped, ok := alignments[a]; ok {
				perColumn[i] = mapped
			} else {
				perColumn[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: perColumn}
		config.Row.Alignment = tw.CellAlignment{PerColumn: perColumn}
	}

	tbl := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(data.Headers) > 0 {
		tbl.Header(cells(data.Headers)...)
	}
	for _, row := range data.Rows {
		if err := tbl.Append(cells(row)...); err != nil {
			return err
		}
	}
	return tbl.Render()
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}

// DetectFormat returns explicit when set. Otherwise a terminal gets a table
// and anything else, such as a pipe, gets JSON.
func DetectFormat(explicit string, out *os.File) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	if out != nil && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat validates s as a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of: table, wide, json, yaml", s)
}

// structRows turns a struct, or a pointer to one, into property/value rows
// named after its json tags ("memory_limit" becomes "Memory Limit").
func structRows(data any) (Data, bool) {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Data{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Data{}, false
	}

	title := cases.Title(language.English)
	t := v.Type()
	rows := make([][]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, _, _ := strings.Cut(field.Tag.Get("json"), ","); tag != "" && tag != "-" {
			name = title.String(strings.ReplaceAll(tag, "_", " "))
		}
		rows = append(rows, []string{name, fieldString(v.Field(i))})
	}

	return Data{Headers: []string{"Property", "Value"}, Rows: rows}, true
}

// fieldString prints a field value, showing nil pointers as the placeholder.
func fieldString(v reflect.Value) string {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return table.Placeholder
		}
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface())
}
