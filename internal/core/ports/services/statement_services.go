package services

import "context"

// StatementSvcFacade renders and stores exportable account statements.
type StatementSvcFacade interface {
	// RenderExpenditureStatement builds the PDF expenditure statement for a
	// user, replaces any previously stored statement for the same owner, and
	// returns the stored artifact path. Fails with apperrors.ErrEmptyResult
	// when the user has no expenditures.
	RenderExpenditureStatement(ctx context.Context, userID string) (string, error)
}
