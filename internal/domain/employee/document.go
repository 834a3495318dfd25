package employee

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jung-kurt/gofpdf"

	"hrms/internal/domain/guard"
)

// ContractDocument renders a contract summary PDF into the service's
// document directory and returns its path.
func (s *Service) ContractDocument(ctx context.Context, contractID int64) (string, error) {
	row, fullName, err := s.store.ContractWithEmployee(ctx, contractID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", &guard.NotFoundError{Entity: "Contract", ID: contractID}
	}
	if err != nil {
		return "", err
	}
	contract, err := row.contract()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.documentDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.documentDir, fmt.Sprintf("contract-%d.pdf", contract.ID))

	endDate := "open-ended"
	if contract.EndDate != nil {
		endDate = contract.EndDate.Format("2006-01-02")
	}
	active := "inactive"
	if contract.IsActive {
		active = "active"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employment Contract")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", fullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Contract type: %s", contract.ContractType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", contract.StartDate.Format("2006-01-02"), endDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Salary: %.2f", contract.Salary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", active))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Terms and conditions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, contract.TermsAndConditions, "", "L", false)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
