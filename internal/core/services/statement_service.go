package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/utils/accounting"
	"github.com/go-pdf/fpdf"
)

type statementService struct {
	userRepo        portsrepo.UserReader
	expenditureRepo portsrepo.ExpenditureReader
	store           portsrepo.ArtifactStore
}

// NewStatementService creates the statement service.
func NewStatementService(userRepo portsrepo.UserReader, expenditureRepo portsrepo.ExpenditureReader, store portsrepo.ArtifactStore) portssvc.StatementSvcFacade {
	return &statementService{
		userRepo:        userRepo,
		expenditureRepo: expenditureRepo,
		store:           store,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func (s *statementService) RenderExpenditureStatement(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	expenditures, err := s.expenditureRepo.FindExpendituresByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load expenditures: %w", err)
	}
	if len(expenditures) == 0 {
		return "", fmt.Errorf("%w: you have no expenses, create an expenditure to get a statement", apperrors.ErrEmptyResult)
	}

	summary := accounting.SummarizeExpenditures(expenditures)
	document, err := buildStatementPDF(user.DisplayName(), expenditures, summary)
	if err != nil {
		return "", fmt.Errorf("failed to render statement: %w", err)
	}

	// A previously generated statement for the same owner is replaced, not
	// versioned.
	name := user.Username + ".pdf"
	existing, err := s.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list statements: %w", err)
	}
	for _, artifact := range existing {
		if artifact == name {
			if err := s.store.Remove(ctx, artifact); err != nil {
				return "", fmt.Errorf("failed to replace previous statement: %w", err)
			}
		}
	}

	path, err := s.store.Save(ctx, name, document)
	if err != nil {
		return "", fmt.Errorf("failed to store statement: %w", err)
	}
	return path, nil
}

// buildStatementPDF lays out one row per expenditure followed by the summary
// block, all amounts at two decimal places.
func buildStatementPDF(ownerName string, expenditures []domain.Expenditure, summary domain.ExpenditureSummary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s expenditure statement", ownerName), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "BI", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Transaction statement for %s", ownerName), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Money Type", "Amount", "Paid On", "Description", "Time Created"}
	widths := []float64{25, 25, 28, 70, 42}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(224, 224, 224)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "R", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, e := range expenditures {
		fill := i%2 == 1
		recorded := e.RecordedAt.Format("2006-01-02 15:04:05")
		cells := []string{string(e.Category), e.Amount.StringFixed(2), e.PaidOn, e.Description, recorded}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "R", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	lines := []string{
		fmt.Sprintf("Total Credits      : %s", summary.TotalCredits.StringFixed(2)),
		fmt.Sprintf("Total Expenses     : %s", summary.TotalExpenses.StringFixed(2)),
		fmt.Sprintf("Total Transactions : %s", summary.TotalTransactions.StringFixed(2)),
		fmt.Sprintf("Money At Hand      : %s", summary.NetCash.StringFixed(2)),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
