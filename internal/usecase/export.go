package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

var exportHeader = []string{
	"Operation ID", "Client", "Amount", "Status", "Priority", "Collector", "FX Provider", "Created",
}

// ExportOperationsCSV renders the filtered listing as CSV, one row per
// operation, and returns the dated filename alongside the payload.
func (uc *DefaultOperationUsecase) ExportOperationsCSV(ctx context.Context, filters domain.OperationFilters) (string, []byte, error) {
	operations, err := uc.ListOperations(ctx, filters)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return "", nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, operation := range operations {
		record := []string{
			operation.Code,
			operation.ClientName(),
			formatUSD(operation.AmountUSD),
			string(operation.Status),
			string(operation.Priority),
			operation.CollectorName(),
			operation.FXProvider,
			operation.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("flush csv: %w", err)
	}

	filename := fmt.Sprintf("operations_%s.csv", time.Now().UTC().Format("20060102"))
	return filename, buf.Bytes(), nil
}

// formatUSD renders "$1,234.56" with thousands separators, matching the
// dashboard's display format.
func formatUSD(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	return "$" + grouped.String() + "." + fracPart
}
