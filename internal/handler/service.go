package handler

import (
	"context"

	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/internal/payment"
	"github.com/bibliotheca/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	Checkout(ctx context.Context, userName string, bookID int) (model.Book, error)
	Return(ctx context.Context, userName string, bookID int) error
	Renew(ctx context.Context, userName string, bookID int) error
	IsCheckedOutByUser(ctx context.Context, userName string, bookID int) (bool, error)
	CountLoans(ctx context.Context, userName string) (int, error)
	ListShelfLoans(ctx context.Context, userName string) ([]model.ShelfLoan, error)
	ListHistory(ctx context.Context, userName string) ([]model.HistoryRecord, error)

	GetBook(ctx context.Context, bookID int) (model.Book, error)
	ListBooks(ctx context.Context, filter model.ListBooksFilter) ([]model.Book, error)
	AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookID int) error
	IncreaseQuantity(ctx context.Context, bookID int) error
	DecreaseQuantity(ctx context.Context, bookID int) error

	PostReview(ctx context.Context, userName string, req model.ReviewRequest) error
	HasReviewed(ctx context.Context, userName string, bookID int) (bool, error)
	ListReviews(ctx context.Context, bookID int) ([]model.Review, error)

	GetFeeAccount(ctx context.Context, userName string) (model.FeeAccount, error)
	SettleFee(ctx context.Context, userName string) error

	PostMessage(ctx context.Context, userName string, req model.MessageRequest) (model.Message, error)
	ListMessages(ctx context.Context, userName string) ([]model.Message, error)
	AnswerMessage(ctx context.Context, adminName string, req model.AnswerMessageRequest) error
}

var _ LendingService = (*service.Service)(nil)

type PaymentClient interface {
	CreateIntent(ctx context.Context, req model.PaymentIntentRequest) (payment.Intent, error)
}

var _ PaymentClient = (*payment.Client)(nil)
