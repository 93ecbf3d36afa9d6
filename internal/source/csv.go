package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/basetelco/revcast/core/engine"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// CSVSource reads both datasets from CSV exports of the billing and
// activation spreadsheets.
type CSVSource struct {
	historyPath    string
	activationPath string
}

var _ contract.DataSource = &CSVSource{} // Compile-time check

// NewCSVSource creates a CSV-backed data source. The activation path may be
// empty, in which case the pipeline is treated as empty.
func NewCSVSource(historyPath, activationPath string) *CSVSource {
	return &CSVSource{historyPath: historyPath, activationPath: activationPath}
}

// History CSV column headers, matching the export of the billing base.
const (
	colCustomerGroup = "GRUPO CLIENTE"
	colServiceType   = "TPSERV"
	colAmount        = "VLR VALIDO"
	colMonth         = "MÊS"
	colYear          = "ANO"
	colDescription   = "DESCRIÇÃO"
)

// Activation CSV column headers.
const (
	colCustomer     = "CLIENTE"
	colExpectedDate = "DATA PREVISTA"
	colMonthlyValue = "VALOR TOTAL"
	colProduct      = "PRODUTO"
	colStatus       = "STATUS"
)

// LoadHistory implements the HistorySource interface.
func (s *CSVSource) LoadHistory(_ context.Context) (schema.HistoryTable, []string) {
	rows, header, warnings := readCSV(s.historyPath)
	if rows == nil {
		return schema.HistoryTable{}, warnings
	}

	var table schema.HistoryTable
	dropped := 0
	for _, row := range rows {
		amount, errAmount := parseDecimal(header.get(row, colAmount))
		month, errMonth := strconv.Atoi(strings.TrimSpace(header.get(row, colMonth)))
		year, errYear := strconv.Atoi(strings.TrimSpace(header.get(row, colYear)))
		if errAmount != nil || errMonth != nil || errYear != nil || month < 1 || month > 12 {
			dropped++
			continue
		}
		table.Records = append(table.Records, schema.BillingRecord{
			CustomerGroup: strings.TrimSpace(header.get(row, colCustomerGroup)),
			ServiceType:   strings.TrimSpace(header.get(row, colServiceType)),
			Amount:        amount,
			Month:         month,
			Year:          year,
			Description:   strings.TrimSpace(header.get(row, colDescription)),
		})
	}
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("dropped %d history rows with unparseable fields", dropped))
	}
	return table, warnings
}

// LoadActivations implements the ActivationSource interface. Rows with a
// missing date or a non-positive monthly value are dropped here so the
// engine's growth-only precondition holds.
func (s *CSVSource) LoadActivations(_ context.Context) (schema.ActivationTable, []string) {
	if s.activationPath == "" {
		return schema.ActivationTable{}, nil
	}
	rows, header, warnings := readCSV(s.activationPath)
	if rows == nil {
		return schema.ActivationTable{}, warnings
	}

	var table schema.ActivationTable
	dropped := 0
	for _, row := range rows {
		customer := strings.TrimSpace(header.get(row, colCustomer))
		date, errDate := parseDate(header.get(row, colExpectedDate))
		value, errValue := parseDecimal(header.get(row, colMonthlyValue))
		if customer == "" || errDate != nil || errValue != nil || value <= 0 {
			dropped++
			continue
		}
		table.Records = append(table.Records, schema.ActivationRecord{
			Customer:      customer,
			NormalizedKey: engine.Normalize(customer),
			ExpectedDate:  date,
			MonthlyValue:  value,
			Product:       strings.TrimSpace(header.get(row, colProduct)),
			Status:        strings.TrimSpace(header.get(row, colStatus)),
		})
	}
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("dropped %d activation rows with missing or invalid fields", dropped))
	}
	return table, warnings
}

// headerIndex maps upper-cased column names to their position.
type headerIndex map[string]int

func (h headerIndex) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// readCSV reads and splits a CSV file into header index and data rows.
// Failures return nil rows and a warning, never an error.
func readCSV(path string) ([][]string, headerIndex, []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, []string{fmt.Sprintf("cannot open %s: %v", path, err)}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.Comma = sniffDelimiter(data)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, []string{fmt.Sprintf("cannot parse %s: %v", path, err)}
	}
	if len(records) < 1 {
		return nil, nil, []string{fmt.Sprintf("%s is empty", path)}
	}

	header := make(headerIndex, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	return records[1:], header, nil
}

// sniffDelimiter picks semicolon when the header line uses it. Spreadsheet
// exports from Brazilian locales delimit with ';' because ',' is the
// decimal separator.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.ContainsRune(line, ';') {
		return ';'
	}
	return ','
}
