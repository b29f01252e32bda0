package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	// WithinTx runs fn against a transaction-scoped repository. Engine
	// mutations go through here so precondition checks and writes are atomic.
	WithinTx(ctx context.Context, fn func(r Repository) error) error

	GetBook(ctx context.Context, bookID int) (model.Book, error)
	GetBookForUpdate(ctx context.Context, bookID int) (model.Book, error)
	GetBooksByIDs(ctx context.Context, ids []int) ([]model.Book, error)
	ListBooks(ctx context.Context, filter model.ListBooksFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBookCopies(ctx context.Context, bookID, copiesDelta, availableDelta int) error
	DeleteBook(ctx context.Context, bookID int) error

	GetLoan(ctx context.Context, userName string, bookID int) (model.Loan, error)
	ListLoans(ctx context.Context, userName string) ([]model.Loan, error)
	CountLoans(ctx context.Context, userName string) (int, error)
	CreateLoan(ctx context.Context, loan model.Loan) error
	UpdateLoanDueDate(ctx context.Context, loanID int, dueDate model.Date) error
	DeleteLoan(ctx context.Context, loanID int) error
	DeleteLoansByBook(ctx context.Context, bookID int) error

	GetFeeAccount(ctx context.Context, userName string) (model.FeeAccount, error)
	CreateFeeAccount(ctx context.Context, userName string) error
	AddFee(ctx context.Context, userName string, units int64) error
	SettleFee(ctx context.Context, userName string) error

	CreateHistory(ctx context.Context, rec model.HistoryRecord) error
	ListHistory(ctx context.Context, userName string) ([]model.HistoryRecord, error)

	HasReview(ctx context.Context, userName string, bookID int) (bool, error)
	ListReviews(ctx context.Context, bookID int) ([]model.Review, error)
	CreateReview(ctx context.Context, review model.Review) error
	DeleteReviewsByBook(ctx context.Context, bookID int) error

	CreateMessage(ctx context.Context, msg model.Message) (model.Message, error)
	ListMessages(ctx context.Context, userName string) ([]model.Message, error)
	AnswerMessage(ctx context.Context, id int, adminName, response string) error
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName    = `book`
	loanTableName    = `loan`
	feeTableName     = `fee_account`
	historyTableName = `history`
	reviewTableName  = `review`
	messageTableName = `message`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

func (r *repository) WithinTx(ctx context.Context, fn func(r Repository) error) error {
	if _, ok := r.ext.(*sqlx.Tx); ok {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	txRepo := &repository{db: r.db, ext: tx, log: r.log}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
