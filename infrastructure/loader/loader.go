// Package loader converte arquivos CSV e XLSX de vendas em registros do domínio
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente")
	ErrInvalidDate       = errors.New("data inválida")
	ErrInvalidNumber     = errors.New("número inválido")
	ErrEmptyFile         = errors.New("arquivo sem cabeçalho")
)

// Result é o conteúdo carregado de um arquivo
type Result struct {
	Records    []domain.SalesRecord
	Dimensions []domain.Dimension // dimensões cujas colunas existem no arquivo
	Warnings   []string
}

// LoadFile carrega o arquivo do disco
func LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	return Load(filepath.Base(path), f)
}

// Load lê o conteúdo e escolhe o formato pela extensão do nome do arquivo
func Load(fileName string, r io.Reader) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler arquivo")
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		rows, err = readCSV(content)
	case ".xlsx":
		rows, err = readXLSX(content)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "arquivo %s", fileName)
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows)
}

func parseRows(rows [][]string) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	columns := buildColumnIndex(rows[0])
	for _, column := range requiredColumns {
		if !columns.has(column) {
			return nil, errors.Wrapf(ErrMissingColumn, "coluna %q", column)
		}
	}

	result := &Result{
		Records:    make([]domain.SalesRecord, 0, len(rows)-1),
		Dimensions: make([]domain.Dimension, 0, len(dimensionColumns)),
		Warnings:   make([]string, 0),
	}

	for _, column := range optionalColumns {
		if !columns.has(column) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("coluna %q ausente no arquivo", column))
		}
	}
	for _, dim := range []domain.Dimension{
		domain.DimensionClient,
		domain.DimensionSeller,
		domain.DimensionProduct,
		domain.DimensionLocality,
		domain.DimensionPaymentCondition,
		domain.DimensionOrder,
	} {
		if columns.has(dimensionColumns[dim]) {
			result.Dimensions = append(result.Dimensions, dim)
		}
	}

	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		// linha 1 é o cabeçalho
		record, err := parseRecord(columns, row, i+2)
		if err != nil {
			return nil, err
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

func parseRecord(columns columnIndex, row []string, line int) (domain.SalesRecord, error) {
	rawDate := columns.get(row, ColumnOrderDate)
	orderDate, ok := parseDate(rawDate)
	if !ok {
		return domain.SalesRecord{}, errors.Wrapf(ErrInvalidDate, "linha %d: %q", line, rawDate)
	}

	record := domain.SalesRecord{
		OrderDate:        orderDate,
		OrderID:          columns.get(row, ColumnOrderID),
		ClientID:         columns.get(row, ColumnClientID),
		Client:           columns.get(row, ColumnClient),
		SellerID:         columns.get(row, ColumnSellerID),
		Seller:           columns.get(row, ColumnSeller),
		Product:          columns.get(row, ColumnProduct),
		Locality:         columns.get(row, ColumnLocality),
		PaymentCondition: columns.get(row, ColumnPaymentCondition),
	}

	numbers := []struct {
		column string
		target *float64
	}{
		{ColumnQuantity, &record.Quantity},
		{ColumnUnitPrice, &record.UnitPrice},
		{ColumnDiscount, &record.Discount},
		{ColumnTotalAmount, &record.TotalAmount},
	}
	for _, n := range numbers {
		raw := columns.get(row, n.column)
		value, err := parseNumber(raw)
		if err != nil {
			return domain.SalesRecord{}, errors.Wrapf(ErrInvalidNumber, "linha %d, coluna %q: %q", line, n.column, raw)
		}
		*n.target = value
	}

	return record, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
